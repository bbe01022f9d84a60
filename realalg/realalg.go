// Package realalg is the real-algebraic-number collaborator CAD's
// sampler depends on: given a univariate polynomial over ℚ, enumerate
// its real roots in ascending order, and support the arithmetic a
// sample point needs (floor, ceiling, a value strictly between two
// roots, comparison). No dedicated library for this exists among the
// available dependencies, so it is implemented here via Sturm's theorem
// and bisection on poly.UniRat/math/big — see DESIGN.md for why no
// third-party library could serve instead.
package realalg

import (
	"math/big"

	"github.com/telser/toysolver/poly"
)

// refineSteps bounds how many bisections isolate/refine performs before
// giving up shrinking further; each step halves the isolating interval,
// so this gives roughly 2^-200 relative precision, far beyond what any
// Floor/Ceil/Compare call in this engine needs.
const refineSteps = 200

// kind distinguishes an exact rational value from a genuine irrational
// algebraic number represented by (minimal polynomial, root index).
type kind int

const (
	kindRational kind = iota
	kindAlgebraic
)

// Number is a real algebraic number: either an exact rational, or the
// n-th ascending real root of a squarefree polynomial, tracked alongside
// a shrinking rational isolating interval [lo, hi] (lo <= value <= hi,
// lo==hi for exact rationals).
type Number struct {
	kind    kind
	rat     *big.Rat
	minPoly poly.UniRat
	index   int
	lo, hi  *big.Rat
}

// FromRat wraps an exact rational as a Number.
func FromRat(r *big.Rat) Number {
	v := new(big.Rat).Set(r)
	return Number{kind: kindRational, rat: v, lo: v, hi: v}
}

// FromInt wraps an integer as a Number.
func FromInt(n int64) Number { return FromRat(big.NewRat(n, 1)) }

// IsRational reports whether n is an exact rational (as opposed to an
// irrational algebraic number isolated by an interval).
func (n Number) IsRational() bool { return n.kind == kindRational }

// Rat returns n's exact rational value. Panics if n is not rational;
// callers should check IsRational first.
func (n Number) Rat() *big.Rat {
	if n.kind != kindRational {
		panic("realalg: Rat called on a non-rational Number")
	}
	return new(big.Rat).Set(n.rat)
}

// MinPoly returns the minimal polynomial and root index backing an
// algebraic (non-rational) Number, needed when re-deriving a sample
// after a model substitution.
func (n Number) MinPoly() (poly.UniRat, int) { return n.minPoly, n.index }

// Float64 returns a double-precision approximation, for diagnostics.
func (n Number) Float64() float64 {
	lo, _ := n.lo.Float64()
	hi, _ := n.hi.Float64()
	return (lo + hi) / 2
}

func (n Number) String() string {
	if n.kind == kindRational {
		return n.rat.RatString()
	}
	f := n.Float64()
	return bigFloatString(f)
}

func bigFloatString(f float64) string {
	return new(big.Float).SetFloat64(f).Text('g', 10)
}

// bounds returns n's current isolating interval.
func (n Number) bounds() (*big.Rat, *big.Rat) { return n.lo, n.hi }

// refine shrinks an algebraic Number's isolating interval by bisection
// until the predicate stop(lo, hi) is satisfied or refineSteps is
// exhausted, and returns the refined Number. Rational numbers are
// returned unchanged (their interval is already a point).
func (n Number) refine(stop func(lo, hi *big.Rat) bool) Number {
	if n.kind == kindRational {
		return n
	}
	lo, hi := n.lo, n.hi
	signLo := sturmSignAt(n.minPoly, lo)
	for i := 0; i < refineSteps && !stop(lo, hi); i++ {
		mid := midpoint(lo, hi)
		v := n.minPoly.Eval(mid)
		if v.Sign() == 0 {
			return FromRat(mid)
		}
		if sign(v) == signLo {
			lo = mid
		} else {
			hi = mid
		}
	}
	n.lo, n.hi = lo, hi
	return n
}

func sign(r *big.Rat) int { return r.Sign() }

func midpoint(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(new(big.Rat).Add(a, b), big.NewRat(1, 2))
}

// sturmSignAt is a convenience alias name kept close to the isolation
// code below: it just evaluates p at x and reports its sign.
func sturmSignAt(p poly.UniRat, x *big.Rat) int { return p.Eval(x).Sign() }

// Compare orders two Numbers, returning <0, 0, >0 as a<b, a==b, a>b.
func Compare(a, b Number) int {
	if a.kind == kindRational && b.kind == kindRational {
		return a.rat.Cmp(b.rat)
	}
	// The same root of the same polynomial is equal outright; refining
	// could never separate it from itself.
	if a.kind == kindAlgebraic && b.kind == kindAlgebraic && a.index == b.index &&
		a.minPoly.CanonicalKey() == b.minPoly.CanonicalKey() {
		return 0
	}
	// Refine both until their isolating intervals are disjoint or one
	// collapses to an exact rational discovered during refinement.
	for i := 0; i < refineSteps; i++ {
		aLo, aHi := a.bounds()
		bLo, bHi := b.bounds()
		if aHi.Cmp(bLo) < 0 {
			return -1
		}
		if bHi.Cmp(aLo) < 0 {
			return 1
		}
		if aLo.Cmp(aHi) == 0 && bLo.Cmp(bHi) == 0 {
			return aLo.Cmp(bLo)
		}
		if aLo.Cmp(aHi) != 0 {
			a = a.refine(func(lo, hi *big.Rat) bool { return false })
		}
		if bLo.Cmp(bHi) != 0 {
			b = b.refine(func(lo, hi *big.Rat) bool { return false })
		}
	}
	return a.lo.Cmp(b.lo)
}

// Floor returns the greatest integer <= n, as an exact rational integer.
func Floor(n Number) *big.Rat {
	if n.kind == kindRational {
		return ratFloor(n.rat)
	}
	n = n.refine(func(lo, hi *big.Rat) bool { return ratFloor(lo).Cmp(ratFloor(hi)) == 0 })
	return ratFloor(n.lo)
}

// Ceil returns the least integer >= n, as an exact rational integer.
func Ceil(n Number) *big.Rat {
	if n.kind == kindRational {
		return ratCeil(n.rat)
	}
	n = n.refine(func(lo, hi *big.Rat) bool { return ratCeil(lo).Cmp(ratCeil(hi)) == 0 })
	return ratCeil(n.hi)
}

func ratFloor(r *big.Rat) *big.Rat {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m) // Euclidean division: floor for positive denom
	return new(big.Rat).SetInt(q)
}

func ratCeil(r *big.Rat) *big.Rat {
	f := ratFloor(r)
	if f.Cmp(r) == 0 {
		return f
	}
	return new(big.Rat).Add(f, big.NewRat(1, 1))
}

// Midpoint returns a rational value strictly between a and b, given
// a < b (per Compare). It refines both numbers until their isolating
// intervals are fully separated, then returns the rational midpoint of
// the separating gap — which necessarily lies strictly between the two
// real values, giving an "between rn and rm" sample without requiring
// exact algebraic addition of two roots.
func Midpoint(a, b Number) *big.Rat {
	if Compare(a, b) >= 0 {
		panic("realalg: Midpoint requires a < b")
	}
	for i := 0; i < refineSteps; i++ {
		_, aHi := a.bounds()
		bLo, _ := b.bounds()
		if aHi.Cmp(bLo) < 0 {
			return midpoint(aHi, bLo)
		}
		if a.kind == kindRational && b.kind == kindRational {
			break
		}
		a = a.refine(func(lo, hi *big.Rat) bool { return false })
		b = b.refine(func(lo, hi *big.Rat) bool { return false })
	}
	_, aHi := a.bounds()
	bLo, _ := b.bounds()
	return midpoint(aHi, bLo)
}

// Add returns a Number equal to a+b, approximated via refined rational
// bounds when either operand is algebraic. Used only for diagnostics;
// CAD's own arithmetic stays in poly.MVPoly/UniRat.
func Add(a, b Number) Number {
	if a.kind == kindRational && b.kind == kindRational {
		return FromRat(new(big.Rat).Add(a.rat, b.rat))
	}
	return FromRat(new(big.Rat).Add(
		midpoint(a.lo, a.hi),
		midpoint(b.lo, b.hi),
	))
}

// --- polynomial arithmetic supporting root isolation ---

// divMod returns a = q*b + r with deg(r) < deg(b). Panics if b is zero.
func divMod(a, b poly.UniRat) (q, r poly.UniRat) {
	if b.IsZero() {
		panic("realalg: division by the zero polynomial")
	}
	degB := b.Degree()
	lcB := b.LeadingCoeff()
	cur := a
	qc := map[int]*big.Rat{}
	for !cur.IsZero() && cur.Degree() >= degB {
		shift := cur.Degree() - degB
		coeff := new(big.Rat).Quo(cur.LeadingCoeff(), lcB)
		cur = cur.Sub(shiftScale(b, shift, coeff))
		if existing, ok := qc[shift]; ok {
			qc[shift] = new(big.Rat).Add(existing, coeff)
		} else {
			qc[shift] = coeff
		}
	}
	maxShift := -1
	for s := range qc {
		if s > maxShift {
			maxShift = s
		}
	}
	qCoeffs := make([]*big.Rat, maxShift+1)
	for i := range qCoeffs {
		qCoeffs[i] = big.NewRat(0, 1)
	}
	for s, c := range qc {
		qCoeffs[s] = c
	}
	return poly.UniRat{Coeffs: qCoeffs}, cur
}

// shiftScale returns coeff * x^shift * p.
func shiftScale(p poly.UniRat, shift int, coeff *big.Rat) poly.UniRat {
	out := make([]*big.Rat, len(p.Coeffs)+shift)
	for i := range out {
		out[i] = big.NewRat(0, 1)
	}
	for i, c := range p.Coeffs {
		out[i+shift] = new(big.Rat).Mul(c, coeff)
	}
	return poly.UniRat{Coeffs: out}
}

// gcdUniRat computes a generator of the ideal (a,b) via the Euclidean
// algorithm, monic-normalized for determinism.
func gcdUniRat(a, b poly.UniRat) poly.UniRat {
	for !b.IsZero() {
		_, r := divMod(a, b)
		a, b = b, r
	}
	if a.IsZero() {
		return a
	}
	monic, _ := a.Monic()
	return monic
}

// squarefree returns p divided by gcd(p, p'), which has the same real
// roots as p, each with multiplicity one. CAD only ever needs a
// polynomial's root set, never its multiplicities, so every RootsOf call
// squarefrees its input first.
func squarefree(p poly.UniRat) poly.UniRat {
	if p.Degree() <= 0 {
		return p
	}
	g := gcdUniRat(p, p.Deriv())
	if g.Degree() <= 0 {
		return p
	}
	q, _ := divMod(p, g)
	monic, _ := q.Monic()
	return monic
}

// sturmSequence builds the Sturm sequence of squarefree p: p0=p, p1=p',
// and p_{i+1} = -rem(p_{i-1}, p_i), terminating once a term is constant.
func sturmSequence(p poly.UniRat) []poly.UniRat {
	seq := []poly.UniRat{p, p.Deriv()}
	for {
		prev2, prev1 := seq[len(seq)-2], seq[len(seq)-1]
		if prev1.IsZero() || prev1.Degree() <= 0 {
			break
		}
		_, r := divMod(prev2, prev1)
		seq = append(seq, r.Scale(big.NewRat(-1, 1)))
	}
	return seq
}

// signVariations counts sign changes of the Sturm sequence at x, skipping
// any term that evaluates to zero there (the standard Sturm convention).
func signVariations(seq []poly.UniRat, x *big.Rat) int {
	count := 0
	prevSign := 0
	for _, p := range seq {
		s := p.Eval(x).Sign()
		if s == 0 {
			continue
		}
		if prevSign != 0 && s != prevSign {
			count++
		}
		prevSign = s
	}
	return count
}

// cauchyBound returns a rational B such that every real root of the
// monic polynomial p lies in (-B, B).
func cauchyBound(p poly.UniRat) *big.Rat {
	monic, _ := p.Monic()
	n := monic.Degree()
	bound := big.NewRat(1, 1)
	for i := 0; i < n; i++ {
		c := monic.Coeffs[i]
		abs := new(big.Rat).Abs(c)
		if abs.Cmp(bound) > 0 {
			bound = abs
		}
	}
	return new(big.Rat).Add(bound, big.NewRat(1, 1))
}

// RootsOf isolates and returns every real root of p in ascending order.
// p need not be squarefree or monic; multiplicities collapse to a single
// Number each, matching CAD's interest in the root set rather than
// multiplicity (sampling only ever needs "between" and "at" a root, never
// how many times it repeats).
func RootsOf(p poly.UniRat) []Number {
	if p.Degree() <= 0 {
		return nil
	}
	sqf := squarefree(p)
	if sqf.Degree() <= 0 {
		return nil
	}
	seq := sturmSequence(sqf)
	b := cauchyBound(sqf)
	negB := new(big.Rat).Neg(b)
	total := signVariations(seq, negB) - signVariations(seq, b)
	if total == 0 {
		return nil
	}
	var out []Number
	isolate(sqf, seq, negB, b, total, &out)
	return out
}

// isolate recursively brackets the `count` roots of sqf known to lie in
// (lo, hi] into one-root intervals, appending them to out in ascending
// order. A split point that lands exactly on a root is moved halfway
// toward lo until it does not, so every bracket has non-root endpoints; a
// singleton bracket is checked against the
// rational root theorem before falling back to bisection, so an exact
// rational root is never misreported as merely algebraic just because no
// probe happened to land on it.
func isolate(sqf poly.UniRat, seq []poly.UniRat, lo, hi *big.Rat, count int, out *[]Number) {
	if count <= 0 {
		return
	}
	if count == 1 {
		if r, ok := rationalRootIn(sqf, lo, hi); ok {
			*out = append(*out, FromRat(r))
			return
		}
		*out = append(*out, Number{
			kind:    kindAlgebraic,
			minPoly: sqf,
			index:   len(*out),
			lo:      new(big.Rat).Set(lo),
			hi:      new(big.Rat).Set(hi),
		}.refine(func(lo, hi *big.Rat) bool { return false }))
		return
	}
	mid := midpoint(lo, hi)
	// Never split at a root, so no bracket endpoint is ever a root of sqf.
	for sqf.Eval(mid).Sign() == 0 {
		mid = midpoint(lo, mid)
	}
	leftCount := signVariations(seq, lo) - signVariations(seq, mid)
	rightCount := count - leftCount
	isolate(sqf, seq, lo, mid, leftCount, out)
	isolate(sqf, seq, mid, hi, rightCount, out)
}

// inHalfOpen reports whether c lies in (lo, hi], matching the interval
// convention isolate and signVariations use throughout.
func inHalfOpen(c, lo, hi *big.Rat) bool {
	return c.Cmp(lo) > 0 && c.Cmp(hi) <= 0
}

// integerCoeffs scales p's coefficients by the LCM of their denominators,
// giving an integer polynomial with the same roots, suitable for the
// rational root theorem's numerator/denominator divisor search.
func integerCoeffs(p poly.UniRat) []*big.Int {
	l := big.NewInt(1)
	for _, c := range p.Coeffs {
		g := new(big.Int).GCD(nil, nil, l, c.Denom())
		l = new(big.Int).Div(new(big.Int).Mul(l, c.Denom()), g)
	}
	out := make([]*big.Int, len(p.Coeffs))
	for i, c := range p.Coeffs {
		scale := new(big.Int).Div(l, c.Denom())
		out[i] = new(big.Int).Mul(c.Num(), scale)
	}
	return out
}

// divisors returns the positive divisors of |n|. n must be nonzero.
func divisors(n *big.Int) []*big.Int {
	n = new(big.Int).Abs(n)
	var out []*big.Int
	one := big.NewInt(1)
	sq := new(big.Int).Sqrt(n)
	for i := new(big.Int).Set(one); i.Cmp(sq) <= 0; i.Add(i, one) {
		m := new(big.Int).Mod(n, i)
		if m.Sign() != 0 {
			continue
		}
		out = append(out, new(big.Int).Set(i))
		j := new(big.Int).Div(n, i)
		if j.Cmp(i) != 0 {
			out = append(out, j)
		}
	}
	return out
}

// rationalRootIn tests whether sqf's unique root in the half-open
// interval (lo, hi] is exactly rational, via the rational root theorem:
// every rational root p/q (lowest terms) of an integer polynomial has p
// dividing the constant term and q dividing the leading coefficient. A
// zero constant term means x itself is a factor (sqf is squarefree, so
// x divides it at most once): that root is reported directly if it lies
// in range, and the theorem is otherwise applied to the x-stripped
// coefficients so the remaining, nonzero-constant factor still yields
// its divisor candidates.
func rationalRootIn(sqf poly.UniRat, lo, hi *big.Rat) (*big.Rat, bool) {
	ic := integerCoeffs(sqf)

	zero := big.NewRat(0, 1)
	if ic[0].Sign() == 0 && inHalfOpen(zero, lo, hi) {
		return zero, true
	}

	k := 0
	for k < len(ic) && ic[k].Sign() == 0 {
		k++
	}
	if k >= len(ic) {
		return nil, false
	}
	a0, an := ic[k], ic[len(ic)-1]

	for _, num := range divisors(a0) {
		for _, den := range divisors(an) {
			for _, s := range [2]int64{1, -1} {
				n := new(big.Int).Mul(num, big.NewInt(s))
				cand := new(big.Rat).SetFrac(n, den)
				if !inHalfOpen(cand, lo, hi) {
					continue
				}
				if sqf.Eval(cand).Sign() == 0 {
					return cand, true
				}
			}
		}
	}
	return nil, false
}
