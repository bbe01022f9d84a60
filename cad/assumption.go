package cad

import (
	"sort"

	"github.com/telser/toysolver/groebner"
	"github.com/telser/toysolver/poly"
	"github.com/telser/toysolver/sign"
)

// signEntry is one (polynomial, feasible-sign-set) fact recorded in an
// Assumption's signMap.
type signEntry struct {
	poly poly.MVPoly
	set  sign.Set
}

// Assumption is a pair (signMap, zeroBasis): everything narrowed about
// the parameter variables so far. Values are immutable snapshots —
// every mutating operation (Assume) returns a new *Assumption rather
// than editing in place, which is what lets the branching search in
// monad.go fork and discard freely.
type Assumption struct {
	entries   []signEntry // sorted by poly.CanonicalKey() for determinism
	zeroBasis groebner.Basis
}

// NewAssumption returns the empty assumption: no sign facts, trivial
// zero basis.
func NewAssumption() *Assumption {
	return &Assumption{zeroBasis: groebner.Empty}
}

// ZeroBasis returns the assumption's Gröbner basis of known-zero
// polynomials.
func (a *Assumption) ZeroBasis() groebner.Basis { return a.zeroBasis }

// clone returns a shallow copy with its own entries slice, so appending
// to the copy never aliases the original's backing array.
func (a *Assumption) clone() *Assumption {
	entries := make([]signEntry, len(a.entries))
	copy(entries, a.entries)
	return &Assumption{entries: entries, zeroBasis: a.zeroBasis}
}

func (a *Assumption) find(p poly.MVPoly) (int, bool) {
	key := p.CanonicalKey()
	for i, e := range a.entries {
		if e.poly.CanonicalKey() == key {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns p's currently feasible sign set, defaulting to all
// three signs when nothing has narrowed it yet.
func (a *Assumption) Lookup(p poly.MVPoly) sign.Set {
	if i, ok := a.find(p); ok {
		return a.entries[i].set
	}
	return sign.SetAll
}

func (a *Assumption) withSet(p poly.MVPoly, s sign.Set) *Assumption {
	out := a.clone()
	if i, ok := out.find(p); ok {
		out.entries[i].set = s
		return out
	}
	out.entries = append(out.entries, signEntry{poly: p, set: s})
	sort.Slice(out.entries, func(i, j int) bool {
		return out.entries[i].poly.CanonicalKey() < out.entries[j].poly.CanonicalKey()
	})
	return out
}

func (a *Assumption) withoutEntry(p poly.MVPoly) *Assumption {
	out := a.clone()
	key := p.CanonicalKey()
	kept := out.entries[:0]
	for _, e := range out.entries {
		if e.poly.CanonicalKey() != key {
			kept = append(kept, e)
		}
	}
	out.entries = kept
	return out
}

func (a *Assumption) withBasis(b groebner.Basis) *Assumption {
	out := a.clone()
	out.zeroBasis = b
	return out
}

// Assume narrows the assumption with "the sign of p lies in s". Returns
// (nil, false) if the branch is infeasible — silently pruned by the
// caller, not an error.
func Assume(a *Assumption, p poly.MVPoly, s sign.Set) (*Assumption, bool) {
	reduced := a.zeroBasis.Reduce(p)

	if reduced.IsConstant() {
		c, _ := reduced.AsConstant()
		if s.Has(sign.Of(c)) {
			return a, true
		}
		return nil, false
	}

	lc := reduced.LeadingCoeff(poly.Grlex)
	normalized := reduced.DivScalar(lc)
	adjusted := sign.DivideSet(s, sign.Of(lc))

	existing := a.Lookup(normalized)
	intersection := adjusted.Intersect(existing)
	if intersection.IsEmpty() {
		return nil, false
	}

	if intersection == sign.SetZero {
		basis := groebner.Compute(append(a.zeroBasis.Generators(), normalized))
		next := a.withoutEntry(normalized).withBasis(basis)
		return propagateZeros(next)
	}

	return a.withSet(normalized, intersection), true
}

// propagateZeros absorbs any signMap entries that now reduce to
// constants under the (just-updated) zeroBasis, failing if a constant's
// sign lies outside the entry's set. After each absorbed entry it rescans
// the rest; entries that reduce to a non-constant polynomial are kept
// unchanged under their original key. It is idempotent: a state with
// nothing left to absorb is a fixpoint.
func propagateZeros(a *Assumption) (*Assumption, bool) {
	for _, e := range a.entries {
		reduced := a.zeroBasis.Reduce(e.poly)
		if !reduced.IsConstant() {
			continue
		}
		c, _ := reduced.AsConstant()
		if !e.set.Has(sign.Of(c)) {
			return nil, false
		}
		return propagateZeros(a.withoutEntry(e.poly))
	}
	return a, true
}

// AssumeSearch lifts Assume into a Search, for composing with Bind: it
// succeeds once (with an empty value) if the sign assumption holds, or
// prunes the branch otherwise.
func AssumeSearch(p poly.MVPoly, s sign.Set) Search[struct{}] {
	return func(a *Assumption) []Branch[struct{}] {
		next, ok := Assume(a, p, s)
		if !ok {
			return nil
		}
		return []Branch[struct{}]{{Value: struct{}{}, Assumption: next}}
	}
}

// assumptionToConditions converts an assumption's accumulated facts into
// the list of (polynomial, sign-set) conditions emitted alongside a
// projection branch's surviving cells — its signMap entries plus its
// zeroBasis generators, each asserted Zero.
func assumptionToConditions(a *Assumption) []Constraint {
	out := make([]Constraint, 0, len(a.entries)+4)
	for _, e := range a.entries {
		out = append(out, Constraint{Poly: e.poly, Set: e.set})
	}
	for _, g := range a.zeroBasis.Generators() {
		out = append(out, Constraint{Poly: g, Set: sign.SetOf(sign.Zero)})
	}
	return out
}

// SignCoeff branches on the sign of a coefficient polynomial, producing
// one alternative per sign in {Neg, Zero, Pos} that survives Assume.
func SignCoeff(a *Assumption, c poly.MVPoly) []Branch[sign.Sign] {
	var out []Branch[sign.Sign]
	for _, s := range []sign.Sign{sign.Neg, sign.Zero, sign.Pos} {
		next, ok := Assume(a, c, sign.SetOf(s))
		if ok {
			out = append(out, Branch[sign.Sign]{Value: s, Assumption: next})
		}
	}
	return out
}
