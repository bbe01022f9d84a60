package cad

import (
	"github.com/telser/toysolver/poly"
)

// Mr is the sign-respecting pseudo-remainder. Given deg(p) >= deg(q) >
// 0, it returns (bm, k, r) where bm is the leading coefficient of q (an
// element of the parameter coefficient ring), k = deg(p) - deg(q) + 1,
// and r satisfies bm^k*p = q*l + r with deg(r) < deg(q), for some
// discarded quotient l.
//
// This is the classic pseudo-division algorithm, generalized to a
// coefficient ring rather than a field: each reduction step multiplies
// the running remainder by bm (clearing the need to divide by it) before
// cancelling its leading term against q. Violating the precondition
// deg(p) < deg(q) is a programmer error, so this panics rather than
// returning an error.
func Mr(p, q poly.Uni) (bm poly.MVPoly, k int, r poly.Uni) {
	if q.Degree() <= 0 || p.Degree() < q.Degree() {
		panic(ErrDegreeTooLow)
	}
	bm = q.LeadingCoeff()
	degQ := q.Degree()
	k = p.Degree() - degQ + 1

	cur := p
	l := poly.UniZero
	remaining := k
	for cur.Degree() >= degQ && !cur.IsZero() {
		lc := cur.LeadingCoeff()
		shift := cur.Degree() - degQ
		term := poly.XPow(shift).ScaleCoeff(lc)
		l = l.ScaleCoeff(bm).Add(term)
		cur = cur.ScaleCoeff(bm).Sub(term.Mul(q))
		remaining--
	}
	for i := 0; i < remaining; i++ {
		l = l.ScaleCoeff(bm)
		cur = cur.ScaleCoeff(bm)
	}
	r = cur

	if Debug {
		lhs := p.ScaleCoeff(mvPow(bm, k))
		rhs := q.Mul(l).Add(r)
		if !uniEqual(lhs, rhs) {
			panic("cad: mr identity bm^k*p = q*l+r violated")
		}
		if r.Degree() >= degQ {
			panic("cad: mr degree invariant deg(r) < deg(q) violated")
		}
	}
	return bm, k, r
}

func mvPow(p poly.MVPoly, k int) poly.MVPoly {
	out := poly.ConstInt(1)
	for i := 0; i < k; i++ {
		out = out.Mul(p)
	}
	return out
}

func uniEqual(a, b poly.Uni) bool {
	if a.Degree() != b.Degree() {
		return false
	}
	for i := range a.Coeffs {
		if !a.Coeffs[i].Equal(b.Coeffs[i]) {
			return false
		}
	}
	return true
}
