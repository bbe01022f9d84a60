package poly

import (
	"math/big"
	"strconv"
	"strings"
)

// UniRat is a univariate polynomial over ℚ — what a Uni becomes once
// every parameter variable has been replaced by a model value. This is
// the input shape the realalg collaborator (root isolation) consumes.
type UniRat struct {
	Coeffs []*big.Rat // ascending, ascending[i] = coefficient of x^i
}

func trimUniRat(p UniRat) UniRat {
	n := len(p.Coeffs)
	for n > 0 && p.Coeffs[n-1].Sign() == 0 {
		n--
	}
	return UniRat{Coeffs: p.Coeffs[:n]}
}

// Degree returns p's degree, or -1 for the zero polynomial.
func (p UniRat) Degree() int { return len(p.Coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p UniRat) IsZero() bool { return len(p.Coeffs) == 0 }

// LeadingCoeff returns the coefficient of p's highest-degree term.
func (p UniRat) LeadingCoeff() *big.Rat {
	if p.IsZero() {
		panic("poly: LeadingCoeff of zero UniRat")
	}
	return p.Coeffs[len(p.Coeffs)-1]
}

// Deriv returns the formal derivative of p.
func (p UniRat) Deriv() UniRat {
	if p.Degree() <= 0 {
		return UniRat{}
	}
	out := make([]*big.Rat, len(p.Coeffs)-1)
	for i := 1; i < len(p.Coeffs); i++ {
		out[i-1] = new(big.Rat).Mul(p.Coeffs[i], big.NewRat(int64(i), 1))
	}
	return trimUniRat(UniRat{Coeffs: out})
}

// Eval evaluates p at x via Horner's method.
func (p UniRat) Eval(x *big.Rat) *big.Rat {
	acc := big.NewRat(0, 1)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.Coeffs[i])
	}
	return acc
}

// Add returns p+q.
func (p UniRat) Add(q UniRat) UniRat {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		a, b := big.NewRat(0, 1), big.NewRat(0, 1)
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i] = new(big.Rat).Add(a, b)
	}
	return trimUniRat(UniRat{Coeffs: out})
}

// Sub returns p-q.
func (p UniRat) Sub(q UniRat) UniRat {
	return p.Add(q.Scale(big.NewRat(-1, 1)))
}

// Scale returns c*p.
func (p UniRat) Scale(c *big.Rat) UniRat {
	if c.Sign() == 0 {
		return UniRat{}
	}
	out := make([]*big.Rat, len(p.Coeffs))
	for i, co := range p.Coeffs {
		out[i] = new(big.Rat).Mul(co, c)
	}
	return UniRat{Coeffs: out}
}

// Monic returns p divided through by its leading coefficient, and that
// coefficient. Panics on the zero polynomial.
func (p UniRat) Monic() (UniRat, *big.Rat) {
	lc := p.LeadingCoeff()
	out := make([]*big.Rat, len(p.Coeffs))
	inv := new(big.Rat).Inv(lc)
	for i, c := range p.Coeffs {
		out[i] = new(big.Rat).Mul(c, inv)
	}
	return UniRat{Coeffs: out}, lc
}

// CanonicalKey returns a string uniquely identifying p, suitable as a
// map key.
func (p UniRat) CanonicalKey() string {
	var b strings.Builder
	for _, c := range p.Coeffs {
		b.WriteString(c.RatString())
		b.WriteByte('|')
	}
	return b.String()
}

func (p UniRat) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, 0, len(p.Coeffs))
	for d := len(p.Coeffs) - 1; d >= 0; d-- {
		c := p.Coeffs[d]
		if c.Sign() == 0 {
			continue
		}
		switch d {
		case 0:
			parts = append(parts, c.RatString())
		case 1:
			parts = append(parts, c.RatString()+"*x")
		default:
			parts = append(parts, c.RatString()+"*x^"+strconv.Itoa(d))
		}
	}
	return strings.Join(parts, " + ")
}
