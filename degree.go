package gopoly

// Degree returns the highest power of v in p, 0 when v does not occur.
func (p Polynomial) Degree(v Indeterminate) uint {
	var deg uint
	for _, t := range p.terms {
		if n := t.powers[v]; n > deg {
			deg = n
		}
	}
	return deg
}

// CoefficientsBy views p as a polynomial in v and returns the coefficient
// polynomial of every power of v that occurs.
func (p Polynomial) CoefficientsBy(v Indeterminate) map[uint]Polynomial {
	groups := make(map[uint][]Term)
	for _, t := range p.terms {
		n := t.powers[v]
		groups[n] = append(groups[n], t.without(v))
	}
	coeffs := make(map[uint]Polynomial, len(groups))
	for n, terms := range groups {
		coeffs[n] = NewPolynomial(terms...)
	}
	return coeffs
}
