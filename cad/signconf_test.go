package cad

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telser/toysolver/poly"
	"github.com/telser/toysolver/sign"
)

func TestBuildSignConfOfConcreteQuadratic(t *testing.T) {
	// x^2 - 1: two real roots, -1 and 1. Its closure also admits the
	// derivative 2x (root at 0), so the configuration has 9 entries, but
	// p's own sign sequence must still alternate Pos around the outside
	// and dip to Neg (via Zero at each root) in between.
	p := poly.XPow(2).Add(poly.UniConst(poly.ConstInt(-1)))
	branches := BuildSignConf([]poly.Uni{p})(NewAssumption())
	require.Len(t, branches, 1)

	conf := branches[0].Value
	require.Len(t, conf.Entries, 9)

	signs := make([]sign.Sign, len(conf.Entries))
	for i, e := range conf.Entries {
		s, ok := e.Signs.Get(p)
		require.True(t, ok, "entry %d missing a sign for p", i)
		signs[i] = s
	}
	require.Equal(t, []sign.Sign{
		sign.Pos, sign.Pos, sign.Zero, sign.Neg, sign.Neg, sign.Neg, sign.Zero, sign.Pos, sign.Pos,
	}, signs)
}

func TestBuildSignConfOfLinearHasOneRoot(t *testing.T) {
	p := poly.UniX().Add(poly.UniConst(poly.ConstInt(-3)))
	branches := BuildSignConf([]poly.Uni{p})(NewAssumption())
	require.Len(t, branches, 1)
	require.Len(t, branches[0].Value.Entries, 5)
}

func TestBuildSignConfOfEmptySetIsTrivialSeed(t *testing.T) {
	branches := BuildSignConf(nil)(NewAssumption())
	require.Len(t, branches, 1)
	require.Len(t, branches[0].Value.Entries, 3)
}
