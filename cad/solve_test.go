package cad

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telser/toysolver/poly"
)

func TestSolveUnivariateLinearEquation(t *testing.T) {
	x := poly.Var("x")
	// x - 2 = 0
	rel := Relation{Lhs: x, Rhs: poly.ConstInt(2), Op: Eq}
	model, ok := Solve([]string{"x"}, []Relation{rel})
	require.True(t, ok)
	require.True(t, model["x"].IsRational())
	require.Equal(t, 0, model["x"].Rat().Cmp(big.NewRat(2, 1)))
}

func TestSolveUnivariateContradictionIsInfeasible(t *testing.T) {
	x := poly.Var("x")
	rels := []Relation{
		{Lhs: x, Rhs: poly.ConstInt(0), Op: Gt}, // x > 0
		{Lhs: x, Rhs: poly.ConstInt(0), Op: Lt}, // x < 0
	}
	_, ok := Solve([]string{"x"}, rels)
	require.False(t, ok)
}

func TestSolveQuadraticWithNoRealRootIsInfeasible(t *testing.T) {
	x := poly.Var("x")
	// x^2 + 1 = 0 has no real solution.
	xSquaredPlus1 := x.Mul(x).Add(poly.ConstInt(1))
	rel := Relation{Lhs: xSquaredPlus1, Rhs: poly.ConstInt(0), Op: Eq}
	_, ok := Solve([]string{"x"}, []Relation{rel})
	require.False(t, ok)
}

func TestSolveStrictPositiveSamplesAboveZero(t *testing.T) {
	x := poly.Var("x")
	rel := Relation{Lhs: x, Rhs: poly.ConstInt(0), Op: Gt}
	model, ok := Solve([]string{"x"}, []Relation{rel})
	require.True(t, ok)
	require.True(t, model["x"].Rat().Sign() > 0)
}

func TestSolveStrictNegativeSamplesBelowZero(t *testing.T) {
	x := poly.Var("x")
	rel := Relation{Lhs: x, Rhs: poly.ConstInt(0), Op: Lt}
	model, ok := Solve([]string{"x"}, []Relation{rel})
	require.True(t, ok)
	require.True(t, model["x"].Rat().Sign() < 0)
}

func TestSolveBoundedIntervalSamplesTheMidpoint(t *testing.T) {
	x := poly.Var("x")
	rels := []Relation{
		{Lhs: x, Rhs: poly.ConstInt(0), Op: Gt}, // x > 0
		{Lhs: x, Rhs: poly.ConstInt(5), Op: Lt}, // x < 5
	}
	model, ok := Solve([]string{"x"}, rels)
	require.True(t, ok)
	require.True(t, model["x"].IsRational())
	require.Equal(t, 0, model["x"].Rat().Cmp(big.NewRat(5, 2)))
}

func TestSolveChainedEqualityAcrossVariables(t *testing.T) {
	x, y := poly.Var("x"), poly.Var("y")
	rels := []Relation{
		{Lhs: x, Rhs: y, Op: Eq},                // x = y
		{Lhs: y, Rhs: poly.ConstInt(3), Op: Eq},  // y = 3
	}
	model, ok := Solve([]string{"x", "y"}, rels)
	require.True(t, ok)
	require.True(t, model["x"].IsRational())
	require.True(t, model["y"].IsRational())
	require.Equal(t, 0, model["x"].Rat().Cmp(big.NewRat(3, 1)))
	require.Equal(t, 0, model["y"].Rat().Cmp(big.NewRat(3, 1)))
}

func TestSolveQuadraticInequalitySamplesInsideRoots(t *testing.T) {
	x := poly.Var("x")
	// x^2 - 2 < 0: the real interval (-sqrt2, sqrt2).
	xSquaredMinus2 := x.Mul(x).Add(poly.ConstInt(-2))
	rel := Relation{Lhs: xSquaredMinus2, Rhs: poly.ConstInt(0), Op: Lt}
	model, ok := Solve([]string{"x"}, []Relation{rel})
	require.True(t, ok)

	got := model["x"]
	require.True(t, got.IsRational())
	// |sample| < sqrt(2): sample^2 < 2.
	sq := new(big.Rat).Mul(got.Rat(), got.Rat())
	require.True(t, sq.Cmp(big.NewRat(2, 1)) < 0)
}
