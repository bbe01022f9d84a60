package cad

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telser/toysolver/poly"
)

func TestNormalizePolyOfConcreteNonzeroLeadIsSingleBranch(t *testing.T) {
	// x^2 + 1: leading coefficient is the constant 1, always nonzero, so
	// there is exactly one branch and it leaves p unchanged.
	p := poly.XPow(2).Add(poly.UniConst(poly.ConstInt(1)))
	branches := NormalizePoly(p)(NewAssumption())
	require.Len(t, branches, 1)
	require.Equal(t, 2, branches[0].Value.Degree())
}

func TestNormalizePolyOfSymbolicLeadBranches(t *testing.T) {
	// a*x + 1, with a a free parameter: the leading coefficient a could be
	// zero or nonzero, so normalizePoly must branch.
	a := poly.Var("a")
	p := poly.Uni{Coeffs: []poly.MVPoly{poly.ConstInt(1), a}}
	branches := NormalizePoly(p)(NewAssumption())
	require.Len(t, branches, 2)

	degrees := map[int]bool{}
	for _, b := range branches {
		degrees[b.Value.Degree()] = true
	}
	require.True(t, degrees[1], "a != 0 branch keeps degree 1")
	require.True(t, degrees[0], "a == 0 branch drops to the constant 1")
}

func TestNormalizePolyOfZeroIsTrivial(t *testing.T) {
	branches := NormalizePoly(poly.UniZero)(NewAssumption())
	require.Len(t, branches, 1)
	require.True(t, branches[0].Value.IsZero())
}
