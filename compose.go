package gopoly

// Composition substitutes v with replacement in every term of p. When the
// replacement mentions v itself, v is first renamed to the reserved
// placeholder inside the replacement and renamed back afterwards.
func (p Polynomial) Composition(v Indeterminate, replacement Polynomial) Polynomial {
	if replacement.contains(v) {
		temporary := replacement.Composition(v, placeholder.Polynomial())
		return p.Composition(v, temporary).Composition(placeholder, v.Polynomial())
	}

	var terms []Term
	for _, t := range p.terms {
		if t.powers[v] == 0 {
			terms = append(terms, t)
			continue
		}
		terms = append(terms, t.Composition(v, replacement).terms...)
	}
	return NewPolynomial(terms...)
}

// CompositionDivision substitutes v with a rational replacement. Terms
// without v are summed as a polynomial and added last.
func (p Polynomial) CompositionDivision(v Indeterminate, replacement Division) Division {
	result := ConstPolynomial(0).Division()
	var remaining []Term
	for _, t := range p.terms {
		if t.powers[v] == 0 {
			remaining = append(remaining, t)
			continue
		}
		result = result.Add(t.CompositionDivision(v, replacement))
	}
	if len(remaining) > 0 {
		result = result.Add(NewPolynomial(remaining...).Division())
	}
	return result
}
