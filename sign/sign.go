// Package sign implements the three-valued sign algebra CAD branches on:
// Neg, Zero, Pos, with the handful of operations the engine needs to
// propagate signs through pseudo-remainders, products, and integer powers.
package sign

import (
	"fmt"
	"math/big"
)

// Sign is one of Neg, Zero, Pos.
type Sign int

const (
	Neg Sign = iota - 1
	Zero
	Pos
)

func (s Sign) String() string {
	switch s {
	case Neg:
		return "-"
	case Zero:
		return "0"
	case Pos:
		return "+"
	default:
		return fmt.Sprintf("sign(%d)", int(s))
	}
}

// Of maps a rational to its sign.
func Of(q *big.Rat) Sign {
	switch q.Sign() {
	case -1:
		return Neg
	case 1:
		return Pos
	default:
		return Zero
	}
}

// Negate returns -s.
func (s Sign) Negate() Sign { return -s }

// Multiply returns the sign of a product.
func (s Sign) Multiply(o Sign) Sign { return Sign(int(s) * int(o)) }

// Divide returns the sign of s/o. Panics if o is Zero: the engine never
// divides by a polynomial it hasn't already established is nonzero.
func (s Sign) Divide(o Sign) Sign {
	if o == Zero {
		panic("sign: division by Zero")
	}
	return s.Multiply(o) // 1/o has the same sign as o for o != 0
}

// Pow returns s raised to a non-negative integer power.
func (s Sign) Pow(k int) Sign {
	if k < 0 {
		panic("sign: negative exponent")
	}
	if k == 0 {
		return Pos // x^0 == 1, regardless of sign(x)
	}
	if s == Zero {
		return Zero
	}
	if s == Pos || k%2 == 0 {
		return Pos
	}
	return Neg
}

// Set is a non-empty subset of {Neg, Zero, Pos}, represented as a bitmask.
type Set uint8

const (
	SetNeg  Set = 1 << iota // bit for Neg
	SetZero                 // bit for Zero
	SetPos                  // bit for Pos
)

// SetAll contains all three signs.
const SetAll = SetNeg | SetZero | SetPos

// SetOf builds a Set from individual signs.
func SetOf(signs ...Sign) Set {
	var s Set
	for _, sg := range signs {
		s |= bitOf(sg)
	}
	return s
}

func bitOf(s Sign) Set {
	switch s {
	case Neg:
		return SetNeg
	case Zero:
		return SetZero
	case Pos:
		return SetPos
	default:
		panic("sign: invalid sign value")
	}
}

// Has reports whether s is a member of the set.
func (set Set) Has(s Sign) bool { return set&bitOf(s) != 0 }

// Intersect returns the intersection of two sign sets.
func (set Set) Intersect(o Set) Set { return set & o }

// IsEmpty reports whether the set has no members.
func (set Set) IsEmpty() bool { return set == 0 }

// IsSingleton reports whether the set has exactly one member, returning it.
func (set Set) IsSingleton() (Sign, bool) {
	switch set {
	case SetNeg:
		return Neg, true
	case SetZero:
		return Zero, true
	case SetPos:
		return Pos, true
	default:
		return Zero, false
	}
}

// Signs returns the set's members in Neg, Zero, Pos order.
func (set Set) Signs() []Sign {
	var out []Sign
	for _, s := range [3]Sign{Neg, Zero, Pos} {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// DivideSet returns {s / d : s in set} for a fixed nonzero divisor sign d.
// Used by assume to adjust a requested sign set when normalizing a
// polynomial by a (possibly negative) leading coefficient.
func DivideSet(set Set, d Sign) Set {
	var out Set
	for _, s := range set.Signs() {
		out |= bitOf(s.Divide(d))
	}
	return out
}

func (set Set) String() string {
	signs := set.Signs()
	out := "{"
	for i, s := range signs {
		if i > 0 {
			out += ","
		}
		out += s.String()
	}
	return out + "}"
}
