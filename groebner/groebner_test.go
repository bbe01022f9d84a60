package groebner

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telser/toysolver/poly"
)

func c(n int64) poly.MVPoly { return poly.ConstInt(n) }

func TestReduceOfBasisMemberIsZero(t *testing.T) {
	x := poly.Var("x")
	b := Compute([]poly.MVPoly{x})
	require.True(t, b.Reduce(x).IsZero())
}

func TestReduceLeavesNonMembersAlone(t *testing.T) {
	x, y := poly.Var("x"), poly.Var("y")
	b := Compute([]poly.MVPoly{x})
	// y reduces to itself: x's ideal doesn't touch y.
	got := b.Reduce(y)
	require.True(t, got.Equal(y))
}

func TestComputeOfLinearIdealCollapsesVariable(t *testing.T) {
	x, y := poly.Var("x"), poly.Var("y")
	// ideal (x - y): reducing x should give y.
	gen := x.Sub(y)
	b := Compute([]poly.MVPoly{gen})
	require.True(t, b.Reduce(x).Equal(y))
}

func TestComputeHandlesNonlinearIdeal(t *testing.T) {
	x, y := poly.Var("x"), poly.Var("y")
	// ideal (x^2 - y, x*y - 1): a textbook Buchberger example (scaled
	// down) whose basis must still reduce x^2 to y.
	g1 := x.Mul(x).Sub(y)
	g2 := x.Mul(y).Sub(c(1))
	b := Compute([]poly.MVPoly{g1, g2})
	require.True(t, b.Reduce(x.Mul(x)).Equal(y))
}

func TestEmptyBasisReducesToIdentity(t *testing.T) {
	x := poly.Var("x")
	require.True(t, Empty.Reduce(x).Equal(x))
	require.True(t, Empty.IsEmpty())
}

func TestComputeOfZeroGeneratorsIsEmpty(t *testing.T) {
	b := Compute([]poly.MVPoly{poly.Zero, poly.Zero})
	require.True(t, b.IsEmpty())
}

func TestComputeDropsRedundantGenerator(t *testing.T) {
	x := poly.Var("x")
	// x and 2x generate the same ideal; minimize should keep one.
	b := Compute([]poly.MVPoly{x, poly.Const(big.NewRat(2, 1)).Mul(x)})
	require.Len(t, b.Generators(), 1)
}
