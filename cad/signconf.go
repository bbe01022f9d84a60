package cad

import (
	"sort"

	"github.com/telser/toysolver/poly"
	"github.com/telser/toysolver/sign"
)

// SignCoeffSearch wraps SignCoeff as a Search so it composes with Bind.
// Branches that contradict an already-established sign (e.g. trying
// Zero on a coefficient the assumption already pins to {Neg, Pos})
// simply vanish, since Assume fails them — callers never need to check
// which signs are "already known" before calling this.
func SignCoeffSearch(c poly.MVPoly) Search[sign.Sign] {
	return func(a *Assumption) []Branch[sign.Sign] { return SignCoeff(a, c) }
}

// BuildSignConf computes the polynomial closure, sorts by ascending
// degree (ties by CanonicalKey), and folds every member through refineSignConf starting from
// the trivial seed configuration.
func BuildSignConf(p []poly.Uni) Search[SignConf[poly.Uni]] {
	return Bind(CollectPolynomials(p), func(pstar []poly.Uni) Search[SignConf[poly.Uni]] {
		sorted := make([]poly.Uni, len(pstar))
		copy(sorted, pstar)
		sort.Slice(sorted, func(i, j int) bool {
			if di, dj := sorted[i].Degree(), sorted[j].Degree(); di != dj {
				return di < dj
			}
			return sorted[i].CanonicalKey() < sorted[j].CanonicalKey()
		})
		return foldSignConf(sorted, Seed[poly.Uni]())
	})
}

func foldSignConf(ps []poly.Uni, conf SignConf[poly.Uni]) Search[SignConf[poly.Uni]] {
	if len(ps) == 0 {
		return Return(conf)
	}
	return Bind(refineSignConf(ps[0], conf), func(next SignConf[poly.Uni]) Search[SignConf[poly.Uni]] {
		return foldSignConf(ps[1:], next)
	})
}

// refineSignConf computes p's sign at every existing point (branching
// via signAt), then walks the triples and splits intervals where p
// changes sign across them.
func refineSignConf(p poly.Uni, conf SignConf[poly.Uni]) Search[SignConf[poly.Uni]] {
	return Bind(computePointSigns(p, conf.Entries), func(signs []sign.Sign) Search[SignConf[poly.Uni]] {
		return Return(buildRefinedConf(p, conf.Entries, signs))
	})
}

// computePointSigns returns, for every Point entry in entries (in
// order), p's sign there — branching wherever signAt does.
func computePointSigns(p poly.Uni, entries []ConfEntry[poly.Uni]) Search[[]sign.Sign] {
	var points []ConfEntry[poly.Uni]
	for _, e := range entries {
		if e.Cell.Kind == CellPoint {
			points = append(points, e)
		}
	}
	return computePointSignsRec(p, points, 0)
}

func computePointSignsRec(p poly.Uni, points []ConfEntry[poly.Uni], idx int) Search[[]sign.Sign] {
	if idx == len(points) {
		return Return([]sign.Sign{})
	}
	return Bind(signAt(p, points[idx].Cell.At, points[idx].Signs), func(s sign.Sign) Search[[]sign.Sign] {
		return Bind(computePointSignsRec(p, points, idx+1), func(rest []sign.Sign) Search[[]sign.Sign] {
			return Return(append([]sign.Sign{s}, rest...))
		})
	})
}

// signAt computes p's sign at a single existing point, given m (that
// point's already-recorded signs for every lower-degree member of the
// closure).
func signAt(p poly.Uni, pt Point[poly.Uni], m SignMap) Search[sign.Sign] {
	switch pt.Kind {
	case PosInf:
		return SignCoeffSearch(p.LeadingCoeff())
	case NegInf:
		s := SignCoeffSearch(p.LeadingCoeff())
		if p.Degree()%2 == 1 {
			return Map(s, func(s sign.Sign) sign.Sign { return s.Negate() })
		}
		return s
	default: // RootOf
		q := pt.Poly
		bm, k, r := Mr(p, q)
		return Bind(NormalizePoly(r), func(normR poly.Uni) Search[sign.Sign] {
			return Bind(resolveConstituentSign(normR, m), func(sR sign.Sign) Search[sign.Sign] {
				return finishSignAt(sR, bm, k)
			})
		})
	}
}

// resolveConstituentSign resolves the sign of a normalized remainder r:
// Zero if r is the zero polynomial, looked up in m if r still has
// positive degree (the collectPolynomials closure guarantees it's
// already present there), or branched via signCoeff if r is a nonzero
// degree-0 polynomial whose sole coefficient is itself a parameter
// polynomial not yet assumed nonzero.
func resolveConstituentSign(r poly.Uni, m SignMap) Search[sign.Sign] {
	if r.IsZero() {
		return Return(sign.Zero)
	}
	if r.Degree() > 0 {
		s, ok := m.Get(r)
		if !ok {
			panic("cad: signAt: remainder not found in cell's sign map — collectPolynomials closure invariant violated")
		}
		return Return(s)
	}
	return SignCoeffSearch(r.Coeff(0))
}

func finishSignAt(sR sign.Sign, bm poly.MVPoly, k int) Search[sign.Sign] {
	if k%2 == 0 {
		return Return(sR)
	}
	return Map(SignCoeffSearch(bm), func(sBm sign.Sign) sign.Sign { return sR.Divide(sBm) })
}

// buildRefinedConf applies the already-computed point signs and then
// walks triples left to right, splitting an interval into two plus a
// new root point wherever p's sign differs between its endpoints and
// neither is already Zero.
func buildRefinedConf(p poly.Uni, entries []ConfEntry[poly.Uni], pointSigns []sign.Sign) SignConf[poly.Uni] {
	updated := make([]ConfEntry[poly.Uni], len(entries))
	pi := 0
	for i, e := range entries {
		if e.Cell.Kind == CellPoint {
			updated[i] = ConfEntry[poly.Uni]{Cell: e.Cell, Signs: e.Signs.With(p, pointSigns[pi])}
			pi++
		} else {
			updated[i] = e
		}
	}

	out := []ConfEntry[poly.Uni]{updated[0]}
	n := 0
	for i := 1; i < len(updated); i += 2 {
		e := updated[i]
		rEntry := updated[i+1]
		l := out[len(out)-1]
		s1, _ := l.Signs.Get(p)
		s2, _ := rEntry.Signs.Get(p)

		switch {
		case s1 == s2:
			out = append(out, ConfEntry[poly.Uni]{Cell: e.Cell, Signs: e.Signs.With(p, s1)})
		case s1 == sign.Zero:
			out = append(out, ConfEntry[poly.Uni]{Cell: e.Cell, Signs: e.Signs.With(p, s2)})
		case s2 == sign.Zero:
			out = append(out, ConfEntry[poly.Uni]{Cell: e.Cell, Signs: e.Signs.With(p, s1)})
		default:
			rootPt := RootPoint[poly.Uni](p, n)
			n++
			out = append(out,
				ConfEntry[poly.Uni]{Cell: IntervalCell(l.Cell.At, rootPt), Signs: e.Signs.With(p, s1)},
				ConfEntry[poly.Uni]{Cell: PointCell(rootPt), Signs: e.Signs.With(p, sign.Zero)},
				ConfEntry[poly.Uni]{Cell: IntervalCell(rootPt, rEntry.Cell.At), Signs: e.Signs.With(p, s2)},
			)
		}
		out = append(out, rEntry)
		// rEntry is examined as s2 exactly once across this loop (it only
		// ever becomes a later iteration's l), so counting it here when p
		// already vanishes there — without re-checking s1, which was
		// either counted as an earlier rEntry already or can never be
		// Zero for updated[0] — advances n past every pre-existing root
		// of p exactly once, keeping it aligned with RootsOf(p)'s
		// ascending order.
		if s2 == sign.Zero {
			n++
		}
	}

	if Debug {
		assertSignContinuity(p, out)
	}
	return SignConf[poly.Uni]{Entries: out}
}

// assertSignContinuity checks the sign-continuity invariant: a sign
// change between two neighboring points is always separated by a Zero
// point of the changing polynomial.
func assertSignContinuity(p poly.Uni, entries []ConfEntry[poly.Uni]) {
	var lastSign sign.Sign
	have := false
	for _, e := range entries {
		if e.Cell.Kind != CellPoint {
			continue
		}
		s, ok := e.Signs.Get(p)
		if !ok {
			continue
		}
		if have && s != lastSign && s != sign.Zero && lastSign != sign.Zero {
			panic("cad: sign continuity invariant violated")
		}
		lastSign = s
		have = true
	}
}
