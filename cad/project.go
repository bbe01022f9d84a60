package cad

import (
	"github.com/telser/toysolver/poly"
	"github.com/telser/toysolver/sign"
)

// ProjConstraint is Project's input shape: a univariate polynomial with
// polynomial coefficients, paired with the sign set it must satisfy.
type ProjConstraint struct {
	Poly poly.Uni
	Set  sign.Set
}

// ProjectionBranch is one surviving alternative project emits: the
// residual parameter-level conditions implied by this branch's
// assumption, and the cells (of the constraint polynomials' shared sign
// configuration) consistent with every constraint.
type ProjectionBranch struct {
	Conditions []Constraint
	Cells      []Cell[poly.Uni]
}

type constraintCheck struct {
	poly poly.Uni
	set  sign.Set
}

// Project eliminates the distinguished variable from a set of
// constraints, returning every surviving branch's residual
// parameter-level conditions and satisfying cells.
func Project(constraints []ProjConstraint) Search[ProjectionBranch] {
	core := Bind(assumeInitialConstants(constraints, 0, nil), func(remaining []ProjConstraint) Search[ProjectionBranch] {
		polys := make([]poly.Uni, len(remaining))
		for i, c := range remaining {
			polys[i] = c.Poly
		}
		return Bind(BuildSignConf(polys), func(conf SignConf[poly.Uni]) Search[ProjectionBranch] {
			return finalizeConstraints(remaining, conf, 0, nil)
		})
	})

	return func(a *Assumption) []Branch[ProjectionBranch] {
		var out []Branch[ProjectionBranch]
		for _, br := range core(a) {
			if len(br.Value.Cells) == 0 {
				continue // step 5: no satisfying cell, prune the branch
			}
			pb := br.Value
			pb.Conditions = assumptionToConditions(br.Assumption)
			out = append(out, Branch[ProjectionBranch]{Value: pb, Assumption: br.Assumption})
		}
		return out
	}
}

// assumeInitialConstants is project step 1: constraints already constant
// in the distinguished variable are assumed away immediately, before the
// sign configuration is built over the rest.
func assumeInitialConstants(cs []ProjConstraint, idx int, remaining []ProjConstraint) Search[[]ProjConstraint] {
	if idx == len(cs) {
		return Return(remaining)
	}
	c := cs[idx]
	if c.Poly.Degree() <= 0 {
		return Bind(AssumeSearch(c.Poly.Coeff(0), c.Set), func(struct{}) Search[[]ProjConstraint] {
			return assumeInitialConstants(cs, idx+1, remaining)
		})
	}
	next := make([]ProjConstraint, len(remaining), len(remaining)+1)
	copy(next, remaining)
	next = append(next, c)
	return assumeInitialConstants(cs, idx+1, next)
}

// finalizeConstraints is project steps 3-4: re-normalize each surviving
// constraint polynomial (assuming away any that now reduce to a
// constant), then collect every non-sentinel cell whose sign map
// satisfies every still-polynomial constraint.
func finalizeConstraints(remaining []ProjConstraint, conf SignConf[poly.Uni], idx int, checks []constraintCheck) Search[ProjectionBranch] {
	if idx == len(remaining) {
		return Return(filterCells(conf, checks))
	}
	c := remaining[idx]
	return Bind(NormalizePoly(c.Poly), func(np poly.Uni) Search[ProjectionBranch] {
		if np.Degree() <= 0 {
			return Bind(AssumeSearch(np.Coeff(0), c.Set), func(struct{}) Search[ProjectionBranch] {
				return finalizeConstraints(remaining, conf, idx+1, checks)
			})
		}
		next := make([]constraintCheck, len(checks), len(checks)+1)
		copy(next, checks)
		next = append(next, constraintCheck{poly: np, set: c.Set})
		return finalizeConstraints(remaining, conf, idx+1, next)
	})
}

func filterCells(conf SignConf[poly.Uni], checks []constraintCheck) ProjectionBranch {
	var cells []Cell[poly.Uni]
	for _, e := range conf.Entries {
		if e.Cell.Kind == CellPoint && (e.Cell.At.Kind == NegInf || e.Cell.At.Kind == PosInf) {
			continue
		}
		satisfied := true
		for _, chk := range checks {
			s, found := e.Signs.Get(chk.poly)
			if !found || !chk.set.Has(s) {
				satisfied = false
				break
			}
		}
		if satisfied {
			cells = append(cells, e.Cell)
		}
	}
	return ProjectionBranch{Cells: cells}
}
