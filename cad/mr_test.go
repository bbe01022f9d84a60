package cad

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telser/toysolver/poly"
)

func TestMrOnConcretePolynomials(t *testing.T) {
	// p = x^2 - 1, q = x - 1: mr should give a zero remainder (q divides p
	// exactly), since p = (x+1)*q. k = deg(p) - deg(q) + 1 = 2.
	p := poly.XPow(2).Add(poly.UniConst(poly.ConstInt(-1)))
	q := poly.UniX().Add(poly.UniConst(poly.ConstInt(-1)))

	bm, k, r := Mr(p, q)
	require.Equal(t, 2, k)
	require.True(t, r.IsZero(), "remainder should be zero: x-1 divides x^2-1 exactly")
	lc, ok := bm.AsConstant()
	require.True(t, ok)
	require.Equal(t, 1, lc.Sign()) // q's leading coeff is 1, strictly positive
}

func TestMrNonzeroRemainder(t *testing.T) {
	// p = x^2 + 1, q = x - 1: p = (x+1)(x-1) + 2, remainder is the
	// constant 2 (up to bm^k scaling).
	p := poly.XPow(2).Add(poly.UniConst(poly.ConstInt(1)))
	q := poly.UniX().Add(poly.UniConst(poly.ConstInt(-1)))

	_, _, r := Mr(p, q)
	require.Equal(t, 0, r.Degree())
}

func TestMrPanicsWhenDegreeTooLow(t *testing.T) {
	p := poly.UniX()
	q := poly.XPow(2)
	require.Panics(t, func() { Mr(p, q) })
}

func TestMrDebugIdentityHoldsUnderDebug(t *testing.T) {
	old := Debug
	Debug = true
	defer func() { Debug = old }()

	p := poly.XPow(3).Add(poly.UniConst(poly.ConstInt(2)))
	q := poly.XPow(2).Add(poly.UniX())
	require.NotPanics(t, func() { Mr(p, q) })
}
