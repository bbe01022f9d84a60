package cad

import (
	"github.com/telser/toysolver/poly"
	"github.com/telser/toysolver/sign"
)

// NormalizePoly strips high-order terms whose coefficient isn't yet
// known nonzero, branching at each such term between "it's nonzero,
// stop here" and "it's zero, drop it and keep walking". The result is a
// polynomial whose leading coefficient is {Neg, Pos} (never {Zero})
// under every returned assumption.
func NormalizePoly(p poly.Uni) Search[poly.Uni] {
	return func(a *Assumption) []Branch[poly.Uni] {
		return normalizeRec(p, a)
	}
}

func normalizeRec(p poly.Uni, a *Assumption) []Branch[poly.Uni] {
	if p.IsZero() {
		return []Branch[poly.Uni]{{Value: p, Assumption: a}}
	}
	c := p.LeadingCoeff()
	var out []Branch[poly.Uni]
	if next, ok := Assume(a, c, sign.SetOf(sign.Neg, sign.Pos)); ok {
		out = append(out, Branch[poly.Uni]{Value: p, Assumption: next})
	}
	if next, ok := Assume(a, c, sign.SetOf(sign.Zero)); ok {
		out = append(out, normalizeRec(p.DropTop(), next)...)
	}
	return out
}
