package gopoly

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
	"golang.org/x/text/language"
)

// ============================================================
// Division: rational expression
// ============================================================

// Division is a numerator/denominator pair of polynomials. Whenever the
// numerator is exactly divisible by the denominator it is stored as
// quotient/1. The zero value is the NaN state 0/0.
type Division struct {
	numerator   Polynomial
	denominator Polynomial
}

// Divide returns numerator/denominator.
func Divide(numerator, denominator Polynomial) (Division, error) {
	if denominator.IsZero() {
		return Division{}, fmt.Errorf("divide [%s] by 0: %w", numerator, ErrDivisionByZero)
	}
	return normalize(numerator, denominator), nil
}

// normalize collapses numerator/denominator into a polynomial when the
// division is exact. A zero denominator is only accepted together with a
// zero numerator, which is the NaN state.
func normalize(numerator, denominator Polynomial) Division {
	if denominator.IsZero() {
		return Division{}
	}
	if q, ok := numerator.TryDivide(denominator); ok {
		return q.Division()
	}
	return Division{numerator: numerator, denominator: denominator}
}

func (d Division) Numerator() Polynomial   { return d.numerator }
func (d Division) Denominator() Polynomial { return d.denominator }

func (d Division) IsNaN() bool        { return d.numerator.IsZero() && d.denominator.IsZero() }
func (d Division) IsZero() bool       { return d.numerator.IsZero() && !d.denominator.IsZero() }
func (d Division) IsPolynomial() bool { return d.denominator.EqualConst(1) }

// AsPolynomial returns the polynomial form of d when its denominator is 1.
func (d Division) AsPolynomial() (Polynomial, bool) {
	if !d.IsPolynomial() {
		return Polynomial{}, false
	}
	return d.numerator, true
}

// Equal compares normalized numerators and denominators pairwise. It does
// not cross-multiply, so equal rational functions written differently
// compare unequal.
func (d Division) Equal(o Division) bool {
	if d.IsZero() {
		return o.IsZero()
	}
	return d.numerator.Equal(o.numerator) && d.denominator.Equal(o.denominator)
}

// EqualPolynomial reports whether d is the polynomial p.
func (d Division) EqualPolynomial(p Polynomial) bool {
	q, ok := d.AsPolynomial()
	return ok && q.Equal(p)
}

// ============================================================
// Arithmetic
// ============================================================

func (d Division) Add(o Division) Division {
	if d.denominator.Equal(o.denominator) {
		return normalize(d.numerator.Add(o.numerator), d.denominator)
	}
	return normalize(
		d.numerator.Mul(o.denominator).Add(o.numerator.Mul(d.denominator)),
		d.denominator.Mul(o.denominator),
	)
}

func (d Division) Sub(o Division) Division { return d.Add(o.Neg()) }

func (d Division) Mul(o Division) Division {
	return normalize(d.numerator.Mul(o.numerator), d.denominator.Mul(o.denominator))
}

// MulPolynomial multiplies the numerator of d by p.
func (d Division) MulPolynomial(p Polynomial) Division {
	return normalize(d.numerator.Mul(p), d.denominator)
}

func (d Division) Scale(f float64) Division {
	return normalize(d.numerator.Scale(f), d.denominator)
}

func (d Division) Neg() Division { return d.Scale(-1) }

// Quo returns d/o.
func (d Division) Quo(o Division) (Division, error) {
	if o.numerator.IsZero() {
		return Division{}, fmt.Errorf("divide [%s] by [%s]: %w", d, o, ErrDivisionByZero)
	}
	return normalize(d.numerator.Mul(o.denominator), d.denominator.Mul(o.numerator)), nil
}

// ToPower raises numerator and denominator to n.
func (d Division) ToPower(n uint) Division {
	return normalize(d.numerator.ToPower(n), d.denominator.ToPower(n))
}

// ============================================================
// Derivatives
// ============================================================

// DerivativeBy applies the quotient rule. A denominator free of v is kept
// as is instead of being squared.
func (d Division) DerivativeBy(v Indeterminate) Division {
	numerator := d.numerator.DerivativeBy(v)
	denominator := d.denominator.DerivativeBy(v)
	if denominator.IsZero() {
		return normalize(numerator, d.denominator)
	}
	return normalize(
		numerator.Mul(d.denominator).Sub(d.numerator.Mul(denominator)),
		d.denominator.Mul(d.denominator),
	)
}

// SecondDerivativeBy differentiates d twice by v.
func (d Division) SecondDerivativeBy(v Indeterminate) Division {
	numerator := d.numerator.DerivativeBy(v)
	denominator := d.denominator.DerivativeBy(v)
	if denominator.IsZero() {
		return normalize(numerator, d.denominator).DerivativeBy(v)
	}

	first := numerator.Mul(d.denominator).Sub(d.numerator.Mul(denominator))
	second := first.DerivativeBy(v).Mul(d.denominator).Sub(first.Mul(denominator).Scale(2))
	return normalize(second, d.denominator.ToPower(3))
}

// ============================================================
// Composition
// ============================================================

// Composition substitutes v with replacement in numerator and denominator.
// A denominator that vanishes fails with ErrDivisionByZero unless the
// numerator vanishes too, which leaves the NaN state.
func (d Division) Composition(v Indeterminate, replacement Polynomial) (Division, error) {
	numerator := d.numerator.Composition(v, replacement)
	denominator := d.denominator.Composition(v, replacement)
	if denominator.IsZero() && !numerator.IsZero() {
		return Division{}, fmt.Errorf("substitute %s in [%s]: %w", v, d, ErrDivisionByZero)
	}
	return normalize(numerator, denominator), nil
}

// CompositionDivision substitutes v with a rational replacement.
func (d Division) CompositionDivision(v Indeterminate, replacement Division) (Division, error) {
	numerator := d.numerator.CompositionDivision(v, replacement)
	denominator := d.denominator.CompositionDivision(v, replacement)
	if denominator.numerator.IsZero() {
		if numerator.numerator.IsZero() {
			return Division{}, nil
		}
		return Division{}, fmt.Errorf("substitute %s in [%s]: %w", v, d, ErrDivisionByZero)
	}
	return numerator.Quo(denominator)
}

// ============================================================
// Inspection
// ============================================================

// Variables returns the distinct indeterminates of numerator and
// denominator in ascending order.
func (d Division) Variables() []Indeterminate {
	return sortedVariables(collectVariables(set.New[Indeterminate](0), d.numerator, d.denominator))
}

// Value evaluates d with the given bindings.
func (d Division) Value(bindings map[Indeterminate]float64) (float64, error) {
	if d.IsNaN() {
		return 0, ErrNaN
	}
	if d.IsZero() {
		return 0, nil
	}
	numerator, err := d.numerator.Value(bindings)
	if err != nil {
		return 0, err
	}
	denominator, err := d.denominator.Value(bindings)
	if err != nil {
		return 0, err
	}
	return numerator / denominator, nil
}

func (d Division) String() string { return d.render(Polynomial.String) }

// Format renders d with the number conventions of tag.
func (d Division) Format(tag language.Tag) string {
	return d.render(func(p Polynomial) string { return p.Format(tag) })
}

func (d Division) render(poly func(Polynomial) string) string {
	switch {
	case d.IsZero():
		return "0"
	case d.IsNaN():
		return "NaN"
	}
	numerator, denominator := poly(d.numerator), poly(d.denominator)
	if !d.numerator.HasOneTerm() {
		numerator = "(" + numerator + ")"
	}
	if !d.denominator.HasOneTerm() {
		denominator = "(" + denominator + ")"
	}
	return numerator + "/" + denominator
}
