package gopoly

import "fmt"

// ReduceBy divides p by d. A constant divisor scales p. Otherwise the
// first term of d is the pivot: the first term of the remaining dividend
// that the pivot divides contributes a quotient term, and the product of
// that term with the rest of d is subtracted. Reduction stops when no term
// of the remaining dividend is divisible by the pivot; what is left is the
// remainder. Only the single pivot is ever used, so remainders are not
// minimal in general.
func (p Polynomial) ReduceBy(d Polynomial) (quotient, remainder Polynomial, err error) {
	if c, ok := d.AsConstant(); ok {
		quotient, err = p.Div(c)
		return quotient, Polynomial{}, err
	}
	if p.IsZero() {
		return Polynomial{}, Polynomial{}, nil
	}

	pivot := d.terms[0]
	suffix := Polynomial{terms: d.terms[1:]}
	var result []Term
	remaining := p
reduce:
	for !remaining.IsZero() {
		for _, t := range remaining.terms {
			q, ok := t.TryDivide(pivot)
			if !ok {
				continue
			}
			result = append(result, q)
			remaining = remaining.Sub(t.Polynomial()).Sub(suffix.MulTerm(q))
			continue reduce
		}
		break
	}
	return NewPolynomial(result...), remaining, nil
}

// Reduce divides p by d and fails when a remainder is left.
func (p Polynomial) Reduce(d Polynomial) (Polynomial, error) {
	q, r, err := p.ReduceBy(d)
	if err != nil {
		return Polynomial{}, err
	}
	if !r.IsZero() {
		return Polynomial{}, fmt.Errorf("reduce [%s] by [%s]: %w", p, d, ErrNotDivisible)
	}
	return q, nil
}

// Mod returns the remainder of ReduceBy.
func (p Polynomial) Mod(d Polynomial) (Polynomial, error) {
	_, r, err := p.ReduceBy(d)
	return r, err
}

// TryDivide reports the exact quotient of p by d, if there is one.
func (p Polynomial) TryDivide(d Polynomial) (Polynomial, bool) {
	q, r, err := p.ReduceBy(d)
	if err != nil || !r.IsZero() {
		return Polynomial{}, false
	}
	return q, true
}
