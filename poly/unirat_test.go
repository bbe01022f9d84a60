package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func ratCoeffs(ns ...int64) UniRat {
	cs := make([]*big.Rat, len(ns))
	for i, n := range ns {
		cs[i] = big.NewRat(n, 1)
	}
	return trimUniRat(UniRat{Coeffs: cs})
}

func TestUniRatEvalHorner(t *testing.T) {
	// p(x) = x^2 - 1
	p := ratCoeffs(-1, 0, 1)
	require.Equal(t, 0, p.Eval(big.NewRat(2, 1)).Cmp(big.NewRat(3, 1)))
	require.Equal(t, 0, p.Eval(big.NewRat(1, 1)).Sign())
}

func TestUniRatDeriv(t *testing.T) {
	p := ratCoeffs(0, 0, 1) // x^2
	d := p.Deriv()
	require.Equal(t, 0, d.Eval(big.NewRat(3, 1)).Cmp(big.NewRat(6, 1)))
}

func TestUniRatMonic(t *testing.T) {
	p := ratCoeffs(4, 0, 2) // 2x^2 + 4
	monic, lc := p.Monic()
	require.Equal(t, 0, lc.Cmp(big.NewRat(2, 1)))
	require.Equal(t, 0, monic.LeadingCoeff().Cmp(big.NewRat(1, 1)))
	require.Equal(t, 0, monic.Eval(big.NewRat(0, 1)).Cmp(big.NewRat(2, 1)))
}

func TestUniRatDegreeOfZeroIsNegOne(t *testing.T) {
	require.Equal(t, -1, UniRat{}.Degree())
}
