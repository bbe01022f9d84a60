package cad

import "github.com/telser/toysolver/poly"

// CollectPolynomials computes the smallest set containing the given
// polynomials that is closed under normalization, formal derivative,
// and pairwise pseudo-remainder, retaining only non-constant normalized
// members. It terminates because every newly admitted candidate (a
// derivative or a pseudo-remainder) has strictly lower degree than the
// polynomial it came from.
func CollectPolynomials(initial []poly.Uni) Search[[]poly.Uni] {
	return func(a *Assumption) []Branch[[]poly.Uni] {
		return closureStep(initial, nil, a)
	}
}

func closureStep(frontier, collected []poly.Uni, a *Assumption) []Branch[[]poly.Uni] {
	if len(frontier) == 0 {
		return []Branch[[]poly.Uni]{{Value: collected, Assumption: a}}
	}
	next, rest := frontier[0], frontier[1:]

	var out []Branch[[]poly.Uni]
	for _, nb := range normalizeRec(next, a) {
		normalized := nb.Value
		if normalized.Degree() <= 0 || containsCanon(collected, normalized) {
			out = append(out, closureStep(rest, collected, nb.Assumption)...)
			continue
		}

		newCollected := make([]poly.Uni, len(collected), len(collected)+1)
		copy(newCollected, collected)
		newCollected = append(newCollected, normalized)

		var candidates []poly.Uni
		if d := normalized.Deriv(); d.Degree() > 0 {
			candidates = append(candidates, d)
		}
		for _, other := range collected {
			if other.Degree() <= 0 {
				continue
			}
			if normalized.Degree() >= other.Degree() {
				_, _, r := Mr(normalized, other)
				if r.Degree() > 0 {
					candidates = append(candidates, r)
				}
			}
			if other.Degree() >= normalized.Degree() {
				_, _, r := Mr(other, normalized)
				if r.Degree() > 0 {
					candidates = append(candidates, r)
				}
			}
		}

		newFrontier := make([]poly.Uni, len(rest), len(rest)+len(candidates))
		copy(newFrontier, rest)
		newFrontier = append(newFrontier, candidates...)

		out = append(out, closureStep(newFrontier, newCollected, nb.Assumption)...)
	}
	return out
}

func containsCanon(set []poly.Uni, p poly.Uni) bool {
	key := p.CanonicalKey()
	for _, q := range set {
		if q.CanonicalKey() == key {
			return true
		}
	}
	return false
}
