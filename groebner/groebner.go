// Package groebner computes Gröbner bases of multivariate rational
// polynomials under grevlex and reduces arbitrary polynomials modulo a
// basis. CAD consumes it as a black-box collaborator; no dedicated
// library for this exists among the available dependencies, so it is
// implemented here from scratch on top of poly.MVPoly/math/big — see
// DESIGN.md for why no third-party library could serve instead.
package groebner

import (
	"math/big"
	"sort"

	"github.com/telser/toysolver/poly"
)

// order is fixed at grevlex throughout this package: Assumption.zeroBasis
// is always a Gröbner basis under this one fixed monomial order.
var order = poly.Grevlex

// Basis is an immutable Gröbner basis snapshot.
type Basis struct {
	gens []poly.MVPoly
}

// Empty is the Gröbner basis of the zero ideal.
var Empty = Basis{}

// Generators returns the basis's generating polynomials.
func (b Basis) Generators() []poly.MVPoly {
	out := make([]poly.MVPoly, len(b.gens))
	copy(out, b.gens)
	return out
}

// IsEmpty reports whether the basis has no nontrivial generators.
func (b Basis) IsEmpty() bool { return len(b.gens) == 0 }

// Reduce computes the normal form of p modulo b: repeatedly rewrite any
// term of the remainder whose monomial is divisible by some generator's
// grevlex-leading monomial, until none is.
func (b Basis) Reduce(p poly.MVPoly) poly.MVPoly {
	cur := p
	for {
		reduced := false
		for _, g := range b.gens {
			if g.IsZero() {
				continue
			}
			gt, _ := g.LeadingTerm(order)
			for _, ct := range cur.Terms() {
				if !ct.Exp.IsDivisibleBy(gt.Exp) {
					continue
				}
				factor := poly.Term{
					Coeff: new(big.Rat).Quo(ct.Coeff, gt.Coeff),
					Exp:   ct.Exp.Div(gt.Exp),
				}
				cur = cur.Sub(mulSingle(factor, g))
				reduced = true
				break
			}
			if reduced {
				break
			}
		}
		if !reduced {
			return cur
		}
	}
}

// mulSingle returns t*p for a single term t.
func mulSingle(t poly.Term, p poly.MVPoly) poly.MVPoly {
	return buildTerm(t).Mul(p)
}

func buildTerm(t poly.Term) poly.MVPoly {
	if t.Coeff.Sign() == 0 {
		return poly.MVPoly{}
	}
	p := poly.Const(t.Coeff)
	for v, e := range t.Exp {
		vp := poly.Var(v)
		pw := poly.Const(big.NewRat(1, 1))
		for i := 0; i < e; i++ {
			pw = pw.Mul(vp)
		}
		p = p.Mul(pw)
	}
	return p
}

// sPoly computes the S-polynomial of f and g under grevlex.
func sPoly(f, g poly.MVPoly) poly.MVPoly {
	lf, _ := f.LeadingTerm(order)
	lg, _ := g.LeadingTerm(order)
	lcm := poly.Monomial{}
	for v, e := range lf.Exp {
		lcm[v] = e
	}
	for v, e := range lg.Exp {
		if e > lcm[v] {
			lcm[v] = e
		}
	}
	factorF := poly.Term{Coeff: new(big.Rat).Inv(lf.Coeff), Exp: lcm.Div(lf.Exp)}
	factorG := poly.Term{Coeff: new(big.Rat).Inv(lg.Coeff), Exp: lcm.Div(lg.Exp)}
	return buildTerm(factorF).Mul(f).Sub(buildTerm(factorG).Mul(g))
}

type pair struct{ i, j int }

// Compute runs Buchberger's algorithm over the given generators,
// returning a Gröbner basis of the ideal they generate.
func Compute(gens []poly.MVPoly) Basis {
	var g []poly.MVPoly
	for _, p := range gens {
		if !p.IsZero() {
			g = append(g, p)
		}
	}
	if len(g) == 0 {
		return Empty
	}

	var pairs []pair
	for i := 0; i < len(g); i++ {
		for j := i + 1; j < len(g); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	for len(pairs) > 0 {
		p := pairs[0]
		pairs = pairs[1:]
		s := sPoly(g[p.i], g[p.j])
		r := Basis{gens: g}.Reduce(s)
		if r.IsZero() {
			continue
		}
		newIdx := len(g)
		g = append(g, r)
		for k := 0; k < newIdx; k++ {
			pairs = append(pairs, pair{k, newIdx})
		}
	}

	return Basis{gens: minimize(g)}
}

// minimize drops generators whose leading monomial is divisible by
// another generator's leading monomial (of generators with equal leading
// monomials, the first is kept), and sorts for determinism.
func minimize(g []poly.MVPoly) []poly.MVPoly {
	keep := make([]bool, len(g))
	for i := range g {
		keep[i] = true
	}
	for i, gi := range g {
		if !keep[i] {
			continue
		}
		lti, _ := gi.LeadingTerm(order)
		for j, gj := range g {
			if i == j || !keep[j] {
				continue
			}
			ltj, _ := gj.LeadingTerm(order)
			if i != j && ltj.Exp.IsDivisibleBy(lti.Exp) && (!ltj.Exp.Equal(lti.Exp) || j > i) {
				keep[j] = false
			}
		}
	}
	out := make([]poly.MVPoly, 0, len(g))
	for i, k := range keep {
		if k {
			out = append(out, g[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CanonicalKey() < out[j].CanonicalKey() })
	return out
}
