package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func r(n, d int64) *big.Rat { return big.NewRat(n, d) }

func TestMVPolyAddCombinesLikeTerms(t *testing.T) {
	x := Var("x")
	p := x.Add(x) // 2x
	q := Const(r(2, 1)).Mul(x)
	require.True(t, p.Equal(q))
}

func TestMVPolyCancellationDropsZeroTerms(t *testing.T) {
	x := Var("x")
	sum := x.Add(x.Neg())
	require.True(t, sum.IsZero())
	require.Equal(t, "0", sum.String())
}

func TestMVPolyMulDistributes(t *testing.T) {
	x, y := Var("x"), Var("y")
	// (x+y)^2 = x^2 + 2xy + y^2
	lhs := x.Add(y).Mul(x.Add(y))
	rhs := x.Mul(x).Add(Const(r(2, 1)).Mul(x).Mul(y)).Add(y.Mul(y))
	require.True(t, lhs.Equal(rhs))
}

func TestMVPolyEqualIsStructuralNotConstructionOrder(t *testing.T) {
	x, y := Var("x"), Var("y")
	a := x.Add(y)
	b := y.Add(x)
	require.True(t, a.Equal(b))
	require.Equal(t, a.CanonicalKey(), b.CanonicalKey())
}

func TestMVPolyAsConstant(t *testing.T) {
	c := ConstInt(5)
	v, ok := c.AsConstant()
	require.True(t, ok)
	require.Equal(t, 0, v.Cmp(r(5, 1)))

	x := Var("x")
	_, ok = x.AsConstant()
	require.False(t, ok)

	zero := Zero
	v, ok = zero.AsConstant()
	require.True(t, ok)
	require.Equal(t, 0, v.Sign())
}

func TestMVPolyEval(t *testing.T) {
	x, y := Var("x"), Var("y")
	p := x.Mul(x).Add(y) // x^2 + y
	v, ok := p.Eval(map[string]*big.Rat{"x": r(3, 1), "y": r(1, 1)})
	require.True(t, ok)
	require.Equal(t, 0, v.Cmp(r(10, 1)))

	_, ok = p.Eval(map[string]*big.Rat{"x": r(3, 1)})
	require.False(t, ok)
}

func TestMVPolySubstituteLeavesOtherVarsSymbolic(t *testing.T) {
	x, y := Var("x"), Var("y")
	p := x.Mul(y).Add(x) // xy + x
	sub := p.Substitute(map[string]*big.Rat{"y": r(2, 1)})
	// xy + x with y=2 becomes 3x
	want := Const(r(3, 1)).Mul(x)
	require.True(t, sub.Equal(want), "got %s want %s", sub.String(), want.String())
}

func TestGrlexOrdersByTotalDegreeThenAlphabetical(t *testing.T) {
	// x^2 beats xy beats y^2 at degree 2; degree 2 beats degree 1.
	x2 := Monomial{"x": 2}
	xy := Monomial{"x": 1, "y": 1}
	y2 := Monomial{"y": 2}
	x1 := Monomial{"x": 1}

	require.True(t, Grlex(x2, xy) > 0)
	require.True(t, Grlex(xy, y2) > 0)
	require.True(t, Grlex(x2, x1) > 0)
}

func TestGrevlexTieBreakPrefersSmallerLastExponent(t *testing.T) {
	xy := Monomial{"x": 1, "y": 1}
	x2 := Monomial{"x": 2}
	y2 := Monomial{"y": 2}
	// Under grevlex, at equal degree, smaller exponent on the
	// last variable wins: x^2 (y^0) beats xy (y^1) beats y^2 (y^2).
	require.True(t, Grevlex(x2, xy) > 0)
	require.True(t, Grevlex(xy, y2) > 0)
}

func TestLeadingTermAndDropLeadingTerm(t *testing.T) {
	x, y := Var("x"), Var("y")
	p := x.Mul(x).Add(y).Add(ConstInt(1)) // x^2 + y + 1
	lt, ok := p.LeadingTerm(Grlex)
	require.True(t, ok)
	require.Equal(t, 0, lt.Coeff.Cmp(r(1, 1)))
	require.Equal(t, 2, lt.Exp.degree())

	rest := p.DropLeadingTerm(Grlex)
	require.True(t, rest.Equal(y.Add(ConstInt(1))))
}

func TestLeadingCoeffPanicsOnZero(t *testing.T) {
	require.Panics(t, func() { Zero.LeadingCoeff(Grlex) })
}

func TestUnivariateRegroupsByExponentOfDistinguishedVar(t *testing.T) {
	x, y := Var("x"), Var("y")
	// y*x^2 + x + y
	p := y.Mul(x).Mul(x).Add(x).Add(y)
	u := p.Univariate("x")
	require.Equal(t, 2, u.Degree())
	require.True(t, u.Coeff(2).Equal(y))
	require.True(t, u.Coeff(1).Equal(ConstInt(1)))
	require.True(t, u.Coeff(0).Equal(y))
}

func TestMonomialDivisibility(t *testing.T) {
	a := Monomial{"x": 3, "y": 1}
	b := Monomial{"x": 1}
	require.True(t, a.IsDivisibleBy(b))
	got := a.Div(b)
	require.True(t, got.Equal(Monomial{"x": 2, "y": 1}))

	c := Monomial{"z": 1}
	require.False(t, a.IsDivisibleBy(c))
}
