// Package poly is the polynomial layer CAD builds on: univariate
// polynomials in one distinguished variable over a coefficient ring of
// multivariate polynomials in the remaining (parameter) variables, with
// rational scalars at the bottom. This generalizes the original
// single-variable Num/Sym/Add/Mul/Pow arithmetic from one variable to
// many, and from an AST to a canonical term map, which is what CAD's
// monomial orders and structural-equality requirements need.
package poly

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Monomial maps a parameter variable name to its exponent. Variables
// with exponent 0 are never stored.
type Monomial map[string]int

func (m Monomial) degree() int {
	d := 0
	for _, e := range m {
		d += e
	}
	return d
}

func (m Monomial) vars() []string {
	vs := make([]string, 0, len(m))
	for v := range m {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

func (m Monomial) key() string {
	vs := m.vars()
	var b strings.Builder
	for _, v := range vs {
		fmt.Fprintf(&b, "%s^%d;", v, m[v])
	}
	return b.String()
}

func (m Monomial) mul(o Monomial) Monomial {
	out := Monomial{}
	for v, e := range m {
		out[v] = e
	}
	for v, e := range o {
		out[v] += e
	}
	return out
}

// Equal reports whether two monomials have identical exponents.
func (m Monomial) Equal(o Monomial) bool { return m.equal(o) }

func (m Monomial) equal(o Monomial) bool {
	if len(m) != len(o) {
		return false
	}
	for v, e := range m {
		if o[v] != e {
			return false
		}
	}
	return true
}

// Term is one coefficient*monomial summand of an MVPoly.
type Term struct {
	Coeff *big.Rat
	Exp   Monomial
}

// MVPoly is a canonical multivariate polynomial over ℚ: terms are
// combined, zero terms dropped, and stored in a fixed deterministic
// order so two construction paths that are algebraically equal produce
// structurally identical values (Equal, and String, agree with algebraic
// equality).
type MVPoly struct {
	terms []Term
}

// Zero is the additive identity.
var Zero = MVPoly{}

// Const builds a constant polynomial from a rational.
func Const(r *big.Rat) MVPoly {
	if r.Sign() == 0 {
		return MVPoly{}
	}
	return MVPoly{terms: []Term{{Coeff: new(big.Rat).Set(r), Exp: Monomial{}}}}
}

// ConstInt builds a constant polynomial from an integer.
func ConstInt(n int64) MVPoly { return Const(big.NewRat(n, 1)) }

// Var builds the polynomial consisting of a single parameter variable.
func Var(name string) MVPoly {
	return MVPoly{terms: []Term{{Coeff: big.NewRat(1, 1), Exp: Monomial{name: 1}}}}
}

// Vars returns the sorted set of variable names appearing in p.
func (p MVPoly) Vars() []string {
	seen := map[string]struct{}{}
	for _, t := range p.terms {
		for v := range t.Exp {
			seen[v] = struct{}{}
		}
	}
	vs := make([]string, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

// canonicalize combines like terms, drops zero coefficients, and sorts
// into the fixed deterministic order used for structural equality.
func canonicalize(terms []Term) MVPoly {
	byKey := map[string]*big.Rat{}
	exps := map[string]Monomial{}
	order := []string{}
	for _, t := range terms {
		k := t.Exp.key()
		if acc, ok := byKey[k]; ok {
			acc.Add(acc, t.Coeff)
		} else {
			byKey[k] = new(big.Rat).Set(t.Coeff)
			exps[k] = t.Exp
			order = append(order, k)
		}
	}
	out := make([]Term, 0, len(order))
	for _, k := range order {
		if byKey[k].Sign() == 0 {
			continue
		}
		out = append(out, Term{Coeff: byKey[k], Exp: exps[k]})
	}
	sort.Slice(out, func(i, j int) bool { return canonicalLess(out[i].Exp, out[j].Exp) })
	return MVPoly{terms: out}
}

// canonicalLess is a fixed, construction-order-independent tie-break
// used only to give Equal/String a single normal form; it is unrelated
// to grlex/grevlex (those are chosen explicitly at each call site that
// needs a "leading" term).
func canonicalLess(a, b Monomial) bool {
	if da, db := a.degree(), b.degree(); da != db {
		return da < db
	}
	ka, kb := a.key(), b.key()
	return ka < kb
}

// Add returns p+q.
func (p MVPoly) Add(q MVPoly) MVPoly {
	terms := make([]Term, 0, len(p.terms)+len(q.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, q.terms...)
	return canonicalize(terms)
}

// Neg returns -p.
func (p MVPoly) Neg() MVPoly {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coeff: new(big.Rat).Neg(t.Coeff), Exp: t.Exp}
	}
	return MVPoly{terms: terms}
}

// Sub returns p-q.
func (p MVPoly) Sub(q MVPoly) MVPoly { return p.Add(q.Neg()) }

// Mul returns p*q.
func (p MVPoly) Mul(q MVPoly) MVPoly {
	terms := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			terms = append(terms, Term{
				Coeff: new(big.Rat).Mul(a.Coeff, b.Coeff),
				Exp:   a.Exp.mul(b.Exp),
			})
		}
	}
	return canonicalize(terms)
}

// Scale returns c*p for a rational scalar c.
func (p MVPoly) Scale(c *big.Rat) MVPoly {
	if c.Sign() == 0 {
		return MVPoly{}
	}
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coeff: new(big.Rat).Mul(t.Coeff, c), Exp: t.Exp}
	}
	return MVPoly{terms: terms}
}

// DivScalar returns p/c for a nonzero rational scalar c.
func (p MVPoly) DivScalar(c *big.Rat) MVPoly {
	if c.Sign() == 0 {
		panic("poly: DivScalar by zero")
	}
	return p.Scale(new(big.Rat).Inv(c))
}

// IsZero reports whether p is the zero polynomial.
func (p MVPoly) IsZero() bool { return len(p.terms) == 0 }

// IsConstant reports whether p has degree <= 0.
func (p MVPoly) IsConstant() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].Exp.degree() == 0)
}

// AsConstant returns p's value as a rational, if p is constant.
func (p MVPoly) AsConstant() (*big.Rat, bool) {
	if len(p.terms) == 0 {
		return big.NewRat(0, 1), true
	}
	if len(p.terms) == 1 && p.terms[0].Exp.degree() == 0 {
		return new(big.Rat).Set(p.terms[0].Coeff), true
	}
	return nil, false
}

// Terms returns p's canonical terms. Callers must not mutate them.
func (p MVPoly) Terms() []Term { return p.terms }

// Equal reports structural (hence algebraic) equality: both sides are
// already in canonical form, so this is a direct comparison.
func (p MVPoly) Equal(q MVPoly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].Coeff.Cmp(q.terms[i].Coeff) != 0 || !p.terms[i].Exp.equal(q.terms[i].Exp) {
			return false
		}
	}
	return true
}

// CanonicalKey returns a string uniquely identifying p's canonical form,
// suitable as a map key (Assumption.signMap is keyed this way).
func (p MVPoly) CanonicalKey() string {
	var b strings.Builder
	for _, t := range p.terms {
		fmt.Fprintf(&b, "(%s)%s|", t.Coeff.RatString(), t.Exp.key())
	}
	return b.String()
}

func (p MVPoly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		vs := t.Exp.vars()
		var mon strings.Builder
		for _, v := range vs {
			if t.Exp[v] == 1 {
				fmt.Fprintf(&mon, "%s", v)
			} else {
				fmt.Fprintf(&mon, "%s^%d", v, t.Exp[v])
			}
		}
		if mon.Len() == 0 {
			parts[i] = t.Coeff.RatString()
		} else if t.Coeff.Cmp(big.NewRat(1, 1)) == 0 {
			parts[i] = mon.String()
		} else {
			parts[i] = t.Coeff.RatString() + "*" + mon.String()
		}
	}
	return strings.Join(parts, " + ")
}

// Eval fully evaluates p against a model assigning every variable in
// p.Vars(); ok is false if the model is missing a variable p depends on.
func (p MVPoly) Eval(model map[string]*big.Rat) (*big.Rat, bool) {
	acc := big.NewRat(0, 1)
	for _, t := range p.terms {
		term := new(big.Rat).Set(t.Coeff)
		for v, e := range t.Exp {
			val, ok := model[v]
			if !ok {
				return nil, false
			}
			pw := ipow(val, e)
			term.Mul(term, pw)
		}
		acc.Add(acc, term)
	}
	return acc, true
}

// Substitute replaces every variable present in model with its value,
// leaving any remaining variables symbolic.
func (p MVPoly) Substitute(model map[string]*big.Rat) MVPoly {
	if len(model) == 0 {
		return p
	}
	terms := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		coeff := new(big.Rat).Set(t.Coeff)
		exp := Monomial{}
		for v, e := range t.Exp {
			if val, ok := model[v]; ok {
				coeff.Mul(coeff, ipow(val, e))
			} else {
				exp[v] = e
			}
		}
		terms = append(terms, Term{Coeff: coeff, Exp: exp})
	}
	return canonicalize(terms)
}

func ipow(base *big.Rat, e int) *big.Rat {
	out := big.NewRat(1, 1)
	for i := 0; i < e; i++ {
		out.Mul(out, base)
	}
	return out
}

// MonomialOrder compares two monomials, returning <0, 0, >0 as a<b, a==b, a>b.
type MonomialOrder func(a, b Monomial) int

// globalVars returns the alphabetically sorted union of variables from
// both monomials — the fixed variable ordering every MonomialOrder in
// this package compares against, since parameter variables carry no
// other explicit precedence.
func globalVars(a, b Monomial) []string {
	seen := map[string]struct{}{}
	for v := range a {
		seen[v] = struct{}{}
	}
	for v := range b {
		seen[v] = struct{}{}
	}
	vs := make([]string, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

// Grlex is the graded lexicographic order: compare total degree first;
// on a tie, the first variable (in alphabetical order) with a larger
// exponent wins.
func Grlex(a, b Monomial) int {
	if da, db := a.degree(), b.degree(); da != db {
		return da - db
	}
	for _, v := range globalVars(a, b) {
		if d := a[v] - b[v]; d != 0 {
			return d
		}
	}
	return 0
}

// Grevlex is the graded reverse-lexicographic order: compare total
// degree first; on a tie, scan variables from the last (alphabetically)
// backwards and prefer the monomial with the *smaller* exponent at the
// first point of difference.
func Grevlex(a, b Monomial) int {
	if da, db := a.degree(), b.degree(); da != db {
		return da - db
	}
	vars := globalVars(a, b)
	for i := len(vars) - 1; i >= 0; i-- {
		v := vars[i]
		if d := a[v] - b[v]; d != 0 {
			return -d
		}
	}
	return 0
}

// LeadingTerm returns the term that is greatest under order, and true,
// unless p is zero.
func (p MVPoly) LeadingTerm(order MonomialOrder) (Term, bool) {
	if len(p.terms) == 0 {
		return Term{}, false
	}
	best := p.terms[0]
	for _, t := range p.terms[1:] {
		if order(t.Exp, best.Exp) > 0 {
			best = t
		}
	}
	return best, true
}

// LeadingCoeff returns the scalar coefficient of p's order-leading term.
// Panics on the zero polynomial: callers (assume, normalizePoly) only
// ever call this on a polynomial already known nonzero in the branch.
func (p MVPoly) LeadingCoeff(order MonomialOrder) *big.Rat {
	t, ok := p.LeadingTerm(order)
	if !ok {
		panic("poly: LeadingCoeff of zero polynomial")
	}
	return t.Coeff
}

// DropLeadingTerm returns p with its order-leading term removed.
func (p MVPoly) DropLeadingTerm(order MonomialOrder) MVPoly {
	t, ok := p.LeadingTerm(order)
	if !ok {
		return p
	}
	out := make([]Term, 0, len(p.terms)-1)
	dropped := false
	for _, term := range p.terms {
		if !dropped && term.Exp.equal(t.Exp) {
			dropped = true
			continue
		}
		out = append(out, term)
	}
	return MVPoly{terms: out}
}

// Univariate regroups p by the exponent of v, returning a Uni whose
// coefficients are p's other variables' polynomials — the cast
// cad.Solve performs at each elimination step to view a multivariate
// constraint as "univariate in v, parameters = everything else".
func (p MVPoly) Univariate(v string) Uni {
	maxDeg := 0
	for _, t := range p.terms {
		if e := t.Exp[v]; e > maxDeg {
			maxDeg = e
		}
	}
	buckets := make([][]Term, maxDeg+1)
	for _, t := range p.terms {
		e := t.Exp[v]
		rest := Monomial{}
		for vv, ee := range t.Exp {
			if vv != v {
				rest[vv] = ee
			}
		}
		buckets[e] = append(buckets[e], Term{Coeff: t.Coeff, Exp: rest})
	}
	coeffs := make([]MVPoly, len(buckets))
	for i, terms := range buckets {
		coeffs[i] = canonicalize(terms)
	}
	return trimUni(Uni{Coeffs: coeffs})
}

// IsDivisibleBy reports whether monomial a is divisible by monomial b
// (every exponent of b is <= the corresponding exponent of a).
func (a Monomial) IsDivisibleBy(b Monomial) bool {
	for v, e := range b {
		if a[v] < e {
			return false
		}
	}
	return true
}

// Div divides monomial a by monomial b, assuming IsDivisibleBy(a, b).
func (a Monomial) Div(b Monomial) Monomial {
	out := Monomial{}
	for v, e := range a {
		out[v] = e
	}
	for v, e := range b {
		out[v] -= e
		if out[v] == 0 {
			delete(out, v)
		}
	}
	return out
}
