// The branching search: the engine runs in a combined non-deterministic
// and stateful discipline over immutable Assumption snapshots, with an
// entry point (RunM) that enumerates all successful (value, assumption)
// pairs. This file is that combinator layer: Search[T] stands in for a
// sequence of alternatives, realized as an eager slice rather than a
// lazy one — either works, and eager keeps the branching explicit.
package cad

// Branch is one successful alternative of a branching computation: a
// value paired with the assumption snapshot under which it holds.
type Branch[T any] struct {
	Value      T
	Assumption *Assumption
}

// Search is a computation that, given the current assumption, returns
// every successful alternative paired with its resulting assumption. An
// empty result means the branch is infeasible and is silently pruned.
type Search[T any] func(*Assumption) []Branch[T]

// Return lifts a plain value into a Search that succeeds once, with the
// assumption unchanged.
func Return[T any](v T) Search[T] {
	return func(a *Assumption) []Branch[T] {
		return []Branch[T]{{Value: v, Assumption: a}}
	}
}

// Fail is the Search that always prunes.
func Fail[T any]() Search[T] {
	return func(a *Assumption) []Branch[T] { return nil }
}

// FromBranches lifts an already-computed branch list (e.g. SignCoeff's
// result) into a Search.
func FromBranches[T any](branches []Branch[T]) Search[T] {
	return func(*Assumption) []Branch[T] { return branches }
}

// Bind sequences two Searches: run m, then for every resulting
// (value, assumption) pair, run f(value) under that assumption, and
// concatenate every alternative it produces. This is runM's
// enumeration, one step at a time.
func Bind[A, B any](m Search[A], f func(A) Search[B]) Search[B] {
	return func(a *Assumption) []Branch[B] {
		var out []Branch[B]
		for _, br := range m(a) {
			out = append(out, f(br.Value)(br.Assumption)...)
		}
		return out
	}
}

// Map transforms every successful value of m with f, leaving branching
// and the assumption untouched.
func Map[A, B any](m Search[A], f func(A) B) Search[B] {
	return Bind(m, func(a A) Search[B] { return Return(f(a)) })
}

// Choice runs every alternative and concatenates all of their results —
// the non-deterministic "or" this search discipline is built on.
func Choice[T any](alts ...Search[T]) Search[T] {
	return func(a *Assumption) []Branch[T] {
		var out []Branch[T]
		for _, alt := range alts {
			out = append(out, alt(a)...)
		}
		return out
	}
}

// RunM is the public entry point: enumerate every successful
// (value, assumption) pair of m starting from the empty assumption.
func RunM[T any](m Search[T]) []Branch[T] {
	return m(NewAssumption())
}
