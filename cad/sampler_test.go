package cad

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telser/toysolver/poly"
	"github.com/telser/toysolver/realalg"
)

func TestFindSampleWholeLineIsZero(t *testing.T) {
	cell := IntervalCell(NegInfPoint[poly.Uni](), PosInfPoint[poly.Uni]())
	sample, ok := FindSample(nil, cell)
	require.True(t, ok)
	require.True(t, sample.IsRational())
	require.Equal(t, 0, sample.Rat().Sign())
}

func TestFindSampleBelowARoot(t *testing.T) {
	// root at x=3: the (-inf, root) cell should sample floor(3-1)=2.
	p := poly.UniX().Add(poly.UniConst(poly.ConstInt(-3)))
	root := RootPoint(p, 0)
	cell := IntervalCell(NegInfPoint[poly.Uni](), root)
	sample, ok := FindSample(map[string]*big.Rat{}, cell)
	require.True(t, ok)
	require.Equal(t, 0, sample.Rat().Cmp(big.NewRat(2, 1)))
}

func TestFindSampleAboveARoot(t *testing.T) {
	p := poly.UniX().Add(poly.UniConst(poly.ConstInt(-3)))
	root := RootPoint(p, 0)
	cell := IntervalCell(root, PosInfPoint[poly.Uni]())
	sample, ok := FindSample(map[string]*big.Rat{}, cell)
	require.True(t, ok)
	require.Equal(t, 0, sample.Rat().Cmp(big.NewRat(4, 1)))
}

func TestFindSampleBetweenTwoRoots(t *testing.T) {
	p1 := poly.UniX().Add(poly.UniConst(poly.ConstInt(-1))) // root at 1
	p2 := poly.UniX().Add(poly.UniConst(poly.ConstInt(-5))) // root at 5
	cell := IntervalCell(RootPoint(p1, 0), RootPoint(p2, 0))
	sample, ok := FindSample(map[string]*big.Rat{}, cell)
	require.True(t, ok)
	require.Equal(t, 0, sample.Rat().Cmp(big.NewRat(3, 1)))
}

func TestFindSampleBetweenNonIncreasingRootsFails(t *testing.T) {
	p1 := poly.UniX().Add(poly.UniConst(poly.ConstInt(-5)))
	p2 := poly.UniX().Add(poly.UniConst(poly.ConstInt(-1)))
	// Deliberately backwards: lo's root (5) is greater than hi's root (1).
	cell := IntervalCell(RootPoint(p1, 0), RootPoint(p2, 0))
	_, ok := FindSample(map[string]*big.Rat{}, cell)
	require.False(t, ok)
}

func TestFindSampleAtARoot(t *testing.T) {
	p := poly.XPow(2).Add(poly.UniConst(poly.ConstInt(-2)))
	root := RootPoint(p, 1) // the positive root, sqrt(2)
	cell := PointCell(root)
	sample, ok := FindSample(map[string]*big.Rat{}, cell)
	require.True(t, ok)
	require.False(t, sample.IsRational())

	roots := realalg.RootsOf(mustToUniRat(t, p))
	require.True(t, realalg.Compare(sample, roots[1]) == 0)
}

func TestFindSamplePanicsOnMalformedCell(t *testing.T) {
	cell := PointCell(NegInfPoint[poly.Uni]())
	require.Panics(t, func() { FindSample(nil, cell) })
}

func mustToUniRat(t *testing.T, p poly.Uni) poly.UniRat {
	t.Helper()
	ur, ok := p.ToUniRat()
	require.True(t, ok)
	return ur
}
