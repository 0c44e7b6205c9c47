package gopoly

import (
	"cmp"
	"slices"
)

// Simplify collects terms with equal power mappings, drops the ones that
// cancel to zero and orders the rest canonically: higher total degree
// first, then higher single power, then by the indeterminate carrying that
// power. Remaining ties keep first-seen order.
func Simplify(terms []Term) []Term {
	index := make(map[string]int, len(terms))
	groups := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.IsZero() {
			continue
		}
		key := t.signature()
		if i, ok := index[key]; ok {
			groups[i].coeff += t.coeff
			continue
		}
		index[key] = len(groups)
		groups = append(groups, t)
	}

	result := groups[:0]
	for _, g := range groups {
		if !approxZero(g.coeff) {
			result = append(result, g)
		}
	}
	slices.SortStableFunc(result, compareTerms)
	if len(result) == 0 {
		return nil
	}
	return result
}

func compareTerms(a, b Term) int {
	if c := cmp.Compare(b.PowerSum(), a.PowerSum()); c != 0 {
		return c
	}
	av, ap := a.GreatestPowerIndeterminate()
	bv, bp := b.GreatestPowerIndeterminate()
	if c := cmp.Compare(bp, ap); c != 0 {
		return c
	}
	return av.Compare(bv)
}
