package cad

import (
	"strconv"
	"strings"

	"github.com/telser/toysolver/sign"
)

// Polynomial is what a Point/Cell/SignConf needs from the polynomial
// type it is instantiated over. The coefficient domain is generic,
// realized here as a Go type parameter so the same cell machinery
// serves both the symbolic phase (poly.Uni, coefficients still
// parameter polynomials) and the post-substitution numeric phase
// (poly.UniRat) without duplicating the decomposition logic.
type Polynomial interface {
	Degree() int
	String() string
	CanonicalKey() string
}

// PointKind distinguishes the two sentinels from a root point.
type PointKind int

const (
	NegInf PointKind = iota
	PosInf
	RootOf
)

// Point is an endpoint of a cell: NegInf, PosInf, or the i-th ascending
// real root of Poly.
type Point[P Polynomial] struct {
	Kind  PointKind
	Poly  P
	Index int
}

// NegInfPoint returns the Point(NegInf) sentinel.
func NegInfPoint[P Polynomial]() Point[P] { return Point[P]{Kind: NegInf} }

// PosInfPoint returns the Point(PosInf) sentinel.
func PosInfPoint[P Polynomial]() Point[P] { return Point[P]{Kind: PosInf} }

// RootPoint returns RootOf(p, i). Callers must only build one once
// they've established p has a well-defined i-th real root.
func RootPoint[P Polynomial](p P, i int) Point[P] { return Point[P]{Kind: RootOf, Poly: p, Index: i} }

func (pt Point[P]) String() string {
	switch pt.Kind {
	case NegInf:
		return "-inf"
	case PosInf:
		return "+inf"
	default:
		return "root(" + pt.Poly.String() + ", " + strconv.Itoa(pt.Index) + ")"
	}
}

// Equal reports whether two points denote the same symbolic endpoint:
// same kind, and for RootOf, the same polynomial (by canonical key) and
// root index.
func (pt Point[P]) Equal(o Point[P]) bool {
	if pt.Kind != o.Kind {
		return false
	}
	if pt.Kind != RootOf {
		return true
	}
	return pt.Index == o.Index && pt.Poly.CanonicalKey() == o.Poly.CanonicalKey()
}

// CellKind distinguishes a single-point cell from an open interval.
type CellKind int

const (
	CellPoint CellKind = iota
	CellInterval
)

// Cell is either a single Point or an open Interval(Lo, Hi) with
// Lo < Hi understood conceptually.
type Cell[P Polynomial] struct {
	Kind   CellKind
	At     Point[P] // valid iff Kind == CellPoint
	Lo, Hi Point[P] // valid iff Kind == CellInterval
}

// PointCell wraps a single point as a cell.
func PointCell[P Polynomial](pt Point[P]) Cell[P] { return Cell[P]{Kind: CellPoint, At: pt} }

// IntervalCell wraps an (lo, hi) pair as an interval cell.
func IntervalCell[P Polynomial](lo, hi Point[P]) Cell[P] {
	return Cell[P]{Kind: CellInterval, Lo: lo, Hi: hi}
}

func (c Cell[P]) String() string {
	if c.Kind == CellPoint {
		return c.At.String()
	}
	return "(" + c.Lo.String() + ", " + c.Hi.String() + ")"
}

// SignMap records, for every polynomial in the closure P*, its sign on a
// single cell — keyed by CanonicalKey since P values aren't necessarily
// comparable with ==.
type SignMap map[string]sign.Sign

// Get returns p's sign on this cell and whether it's recorded.
func (m SignMap) Get(p Polynomial) (sign.Sign, bool) {
	s, ok := m[p.CanonicalKey()]
	return s, ok
}

// With returns a copy of m with p's sign set.
func (m SignMap) With(p Polynomial, s sign.Sign) SignMap {
	out := make(SignMap, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[p.CanonicalKey()] = s
	return out
}

// ConfEntry pairs a cell with its sign map.
type ConfEntry[P Polynomial] struct {
	Cell  Cell[P]
	Signs SignMap
}

// SignConf is an ordered list alternating points and intervals,
// Point(NegInf) first and Point(PosInf) last.
type SignConf[P Polynomial] struct {
	Entries []ConfEntry[P]
}

// Seed returns the trivial configuration [Point(NegInf), Interval(-inf,
// +inf), Point(PosInf)] with empty sign maps, the starting point
// BuildSignConf folds every polynomial through.
func Seed[P Polynomial]() SignConf[P] {
	neg := NegInfPoint[P]()
	pos := PosInfPoint[P]()
	return SignConf[P]{Entries: []ConfEntry[P]{
		{Cell: PointCell(neg), Signs: SignMap{}},
		{Cell: IntervalCell(neg, pos), Signs: SignMap{}},
		{Cell: PointCell(pos), Signs: SignMap{}},
	}}
}

func (c SignConf[P]) String() string {
	parts := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		parts[i] = e.Cell.String()
	}
	return strings.Join(parts, " ")
}
