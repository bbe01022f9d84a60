package cad

import (
	"github.com/telser/toysolver/poly"
	"github.com/telser/toysolver/sign"
)

// Op is one of the six relational operators, each converted into a
// sign set the difference lhs-rhs must lie in.
type Op int

const (
	Le Op = iota // <=
	Ge           // >=
	Lt           // <
	Gt           // >
	Eq           // =
	Ne           // !=
)

func (op Op) String() string {
	switch op {
	case Le:
		return "<="
	case Ge:
		return ">="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Eq:
		return "="
	case Ne:
		return "!="
	default:
		return "?"
	}
}

// SignSet maps a relational operator to the sign set lhs-rhs must lie
// in.
func (op Op) SignSet() sign.Set {
	switch op {
	case Le:
		return sign.SetOf(sign.Neg, sign.Zero)
	case Ge:
		return sign.SetOf(sign.Pos, sign.Zero)
	case Lt:
		return sign.SetOf(sign.Neg)
	case Gt:
		return sign.SetOf(sign.Pos)
	case Eq:
		return sign.SetOf(sign.Zero)
	case Ne:
		return sign.SetOf(sign.Neg, sign.Pos)
	default:
		panic("cad: unknown relational operator")
	}
}

// Relation is one input constraint "lhs op rhs" over multivariate
// rational polynomials in all of the problem's variables (both
// parameters and those still to be eliminated).
type Relation struct {
	Lhs, Rhs poly.MVPoly
	Op       Op
}

// Constraint is a relation already reduced to (p, S) form: sign(p) must
// lie in S.
type Constraint struct {
	Poly poly.MVPoly
	Set  sign.Set
}

// ToConstraint converts a relation to its (lhs-rhs, signSet(op)) form.
func (r Relation) ToConstraint() Constraint {
	return Constraint{Poly: r.Lhs.Sub(r.Rhs), Set: r.Op.SignSet()}
}
