package cad

import (
	"math/big"

	"github.com/telser/toysolver/poly"
	"github.com/telser/toysolver/realalg"
)

// evalPoint specializes a symbolic RootOf(p, n) by substituting model
// into p's coefficients, then re-deriving the resulting rational
// polynomial's n-th root: the substituted polynomial's minimal
// polynomial and root index may differ from p and n, so they're
// re-derived rather than reused.
func evalPoint(model map[string]*big.Rat, pt Point[poly.Uni]) realalg.Number {
	if pt.Kind != RootOf {
		panic(ErrMalformedCell)
	}
	specialized := pt.Poly.SubstituteParams(model)
	ratPoly, ok := specialized.ToUniRat()
	if !ok {
		panic("cad: evalPoint: model left a coefficient symbolic")
	}
	roots := realalg.RootsOf(ratPoly)
	if pt.Index < 0 || pt.Index >= len(roots) {
		panic("cad: evalPoint: root index out of range once specialized")
	}
	return roots[pt.Index]
}

// FindSample takes a cell with symbolic endpoints and a numeric model,
// and returns a concrete real algebraic number lying in the cell, per a
// five-case table. The bool return is false only for the one case that
// is a recoverable branch failure (an Interval(RootOf, RootOf) whose
// endpoints come out non-increasing after specialization); every other
// malformed shape (an infinite point cell, or a combination the table
// doesn't cover) is a fatal precondition violation, and panics.
func FindSample(model map[string]*big.Rat, cell Cell[poly.Uni]) (realalg.Number, bool) {
	switch cell.Kind {
	case CellPoint:
		if cell.At.Kind != RootOf {
			panic(ErrMalformedCell)
		}
		return evalPoint(model, cell.At), true

	case CellInterval:
		lo, hi := cell.Lo, cell.Hi
		switch {
		case lo.Kind == NegInf && hi.Kind == PosInf:
			return realalg.FromInt(0), true

		case lo.Kind == NegInf && hi.Kind == RootOf:
			rn := evalPoint(model, hi)
			shifted := realalg.Add(rn, realalg.FromInt(-1))
			return realalg.FromRat(realalg.Floor(shifted)), true

		case lo.Kind == RootOf && hi.Kind == PosInf:
			rn := evalPoint(model, lo)
			shifted := realalg.Add(rn, realalg.FromInt(1))
			return realalg.FromRat(realalg.Ceil(shifted)), true

		case lo.Kind == RootOf && hi.Kind == RootOf:
			rn := evalPoint(model, lo)
			rm := evalPoint(model, hi)
			if realalg.Compare(rn, rm) >= 0 {
				return realalg.Number{}, false
			}
			return realalg.FromRat(realalg.Midpoint(rn, rm)), true

		default:
			panic(ErrMalformedCell)
		}

	default:
		panic(ErrMalformedCell)
	}
}
