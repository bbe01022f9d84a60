package poly

import (
	"math/big"
	"strconv"
	"strings"
)

// Uni is a univariate polynomial in the CAD engine's distinguished
// variable, with coefficients in the parameter coefficient ring
// (MVPoly). Coeffs is dense and ascending: Coeffs[i] is the coefficient
// of x^i. A trimmed Uni never has a nonzero length with a zero leading
// coefficient, except for the explicit zero polynomial (empty slice).
type Uni struct {
	Coeffs []MVPoly
}

// UniZero is the zero polynomial.
var UniZero = Uni{}

// UniConst builds a degree-0 polynomial from a coefficient-ring value.
func UniConst(c MVPoly) Uni {
	if c.IsZero() {
		return Uni{}
	}
	return Uni{Coeffs: []MVPoly{c}}
}

// UniX returns the polynomial "x".
func UniX() Uni { return Uni{Coeffs: []MVPoly{{}, ConstInt(1)}} }

// UniFromRatCoeffs builds a Uni whose coefficients are all-rational
// constants, ascending by degree.
func UniFromRatCoeffs(coeffs ...*big.Rat) Uni {
	cs := make([]MVPoly, len(coeffs))
	for i, c := range coeffs {
		cs[i] = Const(c)
	}
	return trimUni(Uni{Coeffs: cs})
}

func trimUni(p Uni) Uni {
	n := len(p.Coeffs)
	for n > 0 && p.Coeffs[n-1].IsZero() {
		n--
	}
	return Uni{Coeffs: p.Coeffs[:n]}
}

// Degree returns p's degree in x, or -1 for the zero polynomial.
func (p Uni) Degree() int { return len(p.Coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Uni) IsZero() bool { return len(p.Coeffs) == 0 }

// LeadingCoeff returns the coefficient of p's highest-degree term in x.
// Panics on the zero polynomial.
func (p Uni) LeadingCoeff() MVPoly {
	if p.IsZero() {
		panic("poly: LeadingCoeff of zero Uni")
	}
	return p.Coeffs[len(p.Coeffs)-1]
}

// Coeff returns the coefficient of x^d, or the zero polynomial if d is
// out of range.
func (p Uni) Coeff(d int) MVPoly {
	if d < 0 || d >= len(p.Coeffs) {
		return MVPoly{}
	}
	return p.Coeffs[d]
}

// Add returns p+q.
func (p Uni) Add(q Uni) Uni {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]MVPoly, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coeff(i).Add(q.Coeff(i))
	}
	return trimUni(Uni{Coeffs: out})
}

// Neg returns -p.
func (p Uni) Neg() Uni {
	out := make([]MVPoly, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = c.Neg()
	}
	return Uni{Coeffs: out}
}

// Sub returns p-q.
func (p Uni) Sub(q Uni) Uni { return p.Add(q.Neg()) }

// ScaleCoeff returns p with every coefficient multiplied by c (a
// coefficient-ring value, not necessarily a scalar).
func (p Uni) ScaleCoeff(c MVPoly) Uni {
	if c.IsZero() {
		return Uni{}
	}
	out := make([]MVPoly, len(p.Coeffs))
	for i, co := range p.Coeffs {
		out[i] = co.Mul(c)
	}
	return trimUni(Uni{Coeffs: out})
}

// Mul returns p*q.
func (p Uni) Mul(q Uni) Uni {
	if p.IsZero() || q.IsZero() {
		return Uni{}
	}
	out := make([]MVPoly, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range out {
		out[i] = MVPoly{}
	}
	for i, a := range p.Coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coeffs {
			if b.IsZero() {
				continue
			}
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return trimUni(Uni{Coeffs: out})
}

// XPow returns x^k as a Uni.
func XPow(k int) Uni {
	cs := make([]MVPoly, k+1)
	for i := 0; i < k; i++ {
		cs[i] = MVPoly{}
	}
	cs[k] = ConstInt(1)
	return Uni{Coeffs: cs}
}

// Deriv returns the formal derivative of p with respect to x.
func (p Uni) Deriv() Uni {
	if p.Degree() <= 0 {
		return Uni{}
	}
	out := make([]MVPoly, len(p.Coeffs)-1)
	for i := 1; i < len(p.Coeffs); i++ {
		out[i-1] = p.Coeffs[i].Scale(big.NewRat(int64(i), 1))
	}
	return trimUni(Uni{Coeffs: out})
}

// SubstituteParams replaces every parameter variable present in model
// throughout p's coefficients, returning a Uni whose coefficients are
// constant (fully evaluated) wherever model covers all of that
// coefficient's variables.
func (p Uni) SubstituteParams(model map[string]*big.Rat) Uni {
	out := make([]MVPoly, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = c.Substitute(model)
	}
	return trimUni(Uni{Coeffs: out})
}

// ToUniRat converts p to a plain rational-coefficient polynomial, once
// every coefficient has been fully evaluated to a constant (ok is false
// otherwise).
func (p Uni) ToUniRat() (UniRat, bool) {
	out := make([]*big.Rat, len(p.Coeffs))
	for i, c := range p.Coeffs {
		r, ok := c.AsConstant()
		if !ok {
			return UniRat{}, false
		}
		out[i] = r
	}
	return trimUniRat(UniRat{Coeffs: out}), true
}

// DropTop removes p's highest-degree coefficient without retrimming,
// used by normalization routines that drop a term only after separately
// establishing it is assumed zero (rather than structurally zero).
func (p Uni) DropTop() Uni {
	if p.IsZero() {
		return p
	}
	return Uni{Coeffs: p.Coeffs[:len(p.Coeffs)-1]}
}

// CanonicalKey returns a string uniquely identifying p, suitable as a
// map key (cad's sign configurations are keyed this way).
func (p Uni) CanonicalKey() string {
	var b strings.Builder
	for _, c := range p.Coeffs {
		b.WriteString(c.CanonicalKey())
		b.WriteByte('|')
	}
	return b.String()
}

func (p Uni) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, 0, len(p.Coeffs))
	for d := len(p.Coeffs) - 1; d >= 0; d-- {
		c := p.Coeffs[d]
		if c.IsZero() {
			continue
		}
		switch d {
		case 0:
			parts = append(parts, "("+c.String()+")")
		case 1:
			parts = append(parts, "("+c.String()+")*x")
		default:
			parts = append(parts, "("+c.String()+")*x^"+strconv.Itoa(d))
		}
	}
	return strings.Join(parts, " + ")
}
