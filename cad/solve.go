package cad

import (
	"math/big"

	"github.com/telser/toysolver/realalg"
	"github.com/telser/toysolver/sign"
)

// Model is a mapping from parameter variable to the real algebraic
// number Solve assigned it.
type Model map[string]realalg.Number

// Solve eliminates variables in the given order, one projection per
// level, and returns the first complete model found by the search. ok
// is false if no variable assignment satisfies every relation.
func Solve(vars []string, relations []Relation) (Model, bool) {
	constraints := make([]Constraint, len(relations))
	for i, r := range relations {
		constraints[i] = r.ToConstraint()
	}
	branches := solveVars(vars, constraints)(NewAssumption())
	if len(branches) == 0 {
		return nil, false
	}
	return branches[0].Value, true
}

// ratModel converts a Model to the map[string]*big.Rat the polynomial
// layer's SubstituteParams needs. Every value must already be rational:
// a shallower variable's cell endpoints can depend on a deeper
// variable's sample, but substituting a genuinely irrational algebraic
// number into another polynomial's coefficients and re-isolating its
// roots needs a full algebraic-number tower, which no library in this
// engine's domain provides (see DESIGN.md) — so that case is a hard
// scope boundary, not a silent approximation.
func ratModel(m Model) map[string]*big.Rat {
	out := make(map[string]*big.Rat, len(m))
	for k, v := range m {
		if !v.IsRational() {
			panic("cad: solve: a variable's cell depends on another variable's irrational sample, which requires algebraic-number-tower substitution (unsupported)")
		}
		out[k] = v.Rat()
	}
	return out
}

// checkBaseConstraints is the base case: with no variables left, every
// remaining condition must already be a rational constant whose sign
// lies in its required set.
func checkBaseConstraints(conditions []Constraint) bool {
	for _, c := range conditions {
		r, ok := c.Poly.AsConstant()
		if !ok {
			return false
		}
		if !c.Set.Has(sign.Of(r)) {
			return false
		}
	}
	return true
}

// dropConditionsDependingOn removes conditions that still depend on v
// from a projection branch's residual conditions. Project's own cell
// selection already requires every constraint depending on v to hold at
// every point of a surviving cell (filterCells checks exactly this), so
// passing them on unchanged to the next, v-free recursion level would
// just make checkBaseConstraints demand that a not-yet-sampled v be a
// rational constant today — a condition the sample satisfies once
// chosen, not one the remaining variables need to resolve.
func dropConditionsDependingOn(conditions []Constraint, v string) []Constraint {
	out := make([]Constraint, 0, len(conditions))
	for _, c := range conditions {
		if c.Poly.Univariate(v).Degree() <= 0 {
			out = append(out, c)
		}
	}
	return out
}

// solveVars recurses over the ordered variable list, eliminating the
// head variable by projection and recursing on the rest before
// sampling: a shallower variable's sample depends on the model the
// deeper recursion already built.
func solveVars(vars []string, conditions []Constraint) Search[Model] {
	if len(vars) == 0 {
		return func(a *Assumption) []Branch[Model] {
			if checkBaseConstraints(conditions) {
				return []Branch[Model]{{Value: Model{}, Assumption: a}}
			}
			return nil
		}
	}

	v, rest := vars[0], vars[1:]
	return func(a *Assumption) []Branch[Model] {
		projConstraints := make([]ProjConstraint, len(conditions))
		for i, c := range conditions {
			projConstraints[i] = ProjConstraint{Poly: c.Poly.Univariate(v), Set: c.Set}
		}

		for _, pbr := range Project(projConstraints)(a) {
			pb := pbr.Value
			residual := dropConditionsDependingOn(pb.Conditions, v)
			for _, sub := range solveVars(rest, residual)(pbr.Assumption) {
				ratSub := ratModel(sub.Value)
				for _, cell := range pb.Cells {
					sample, ok := FindSample(ratSub, cell)
					if !ok {
						continue
					}
					model := make(Model, len(sub.Value)+1)
					for k, vv := range sub.Value {
						model[k] = vv
					}
					model[v] = sample
					return []Branch[Model]{{Value: model, Assumption: sub.Assumption}}
				}
			}
		}
		return nil
	}
}
