package gopoly

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"golang.org/x/text/language"
)

// ============================================================
// Polynomial: canonical sum of terms
// ============================================================

// Polynomial is an immutable sum of terms in canonical order. The zero
// value is the zero polynomial.
type Polynomial struct {
	terms []Term
}

// NewPolynomial returns the canonical sum of terms.
func NewPolynomial(terms ...Term) Polynomial {
	return Polynomial{terms: Simplify(terms)}
}

// ConstPolynomial returns the constant polynomial c.
func ConstPolynomial(c float64) Polynomial { return NewPolynomial(Const(c)) }

// Terms returns a copy of the canonical term sequence.
func (p Polynomial) Terms() []Term { return slices.Clone(p.terms) }

func (p Polynomial) IsZero() bool     { return len(p.terms) == 0 }
func (p Polynomial) HasOneTerm() bool { return len(p.terms) < 2 }

// IsConstant reports whether p has no indeterminates. The zero polynomial
// is constant.
func (p Polynomial) IsConstant() bool {
	return p.HasOneTerm() && (p.IsZero() || p.terms[0].IsConstant())
}

// AsConstant returns the value of a constant polynomial.
func (p Polynomial) AsConstant() (float64, bool) {
	if !p.IsConstant() {
		return 0, false
	}
	if p.IsZero() {
		return 0, true
	}
	return p.terms[0].coeff, true
}

// Equal reports whether p and o differ by the zero polynomial.
func (p Polynomial) Equal(o Polynomial) bool { return o.Sub(p).IsZero() }

// EqualConst reports whether p is the constant c.
func (p Polynomial) EqualConst(c float64) bool { return p.Equal(ConstPolynomial(c)) }

// ============================================================
// Arithmetic
// ============================================================

func (p Polynomial) Add(o Polynomial) Polynomial {
	return NewPolynomial(slices.Concat(p.terms, o.terms)...)
}

func (p Polynomial) Sub(o Polynomial) Polynomial {
	terms := slices.Clone(p.terms)
	for _, t := range o.terms {
		terms = append(terms, t.Neg())
	}
	return NewPolynomial(terms...)
}

func (p Polynomial) Mul(o Polynomial) Polynomial {
	terms := make([]Term, 0, len(p.terms)*len(o.terms))
	for _, a := range p.terms {
		for _, b := range o.terms {
			terms = append(terms, a.Mul(b))
		}
	}
	return NewPolynomial(terms...)
}

// MulTerm multiplies every term of p by t.
func (p Polynomial) MulTerm(t Term) Polynomial {
	terms := make([]Term, len(p.terms))
	for i, a := range p.terms {
		terms[i] = t.Mul(a)
	}
	return NewPolynomial(terms...)
}

func (p Polynomial) Scale(f float64) Polynomial { return p.MulTerm(Const(f)) }
func (p Polynomial) Neg() Polynomial            { return p.Scale(-1) }

// Div divides every coefficient of p by c.
func (p Polynomial) Div(c float64) (Polynomial, error) {
	if c == 0 {
		return Polynomial{}, ErrDivisionByZero
	}
	return p.Scale(1 / c), nil
}

// Over returns the rational expression p/d.
func (p Polynomial) Over(d Polynomial) (Division, error) { return Divide(p, d) }

// Division returns p/1.
func (p Polynomial) Division() Division {
	return Division{numerator: p, denominator: ConstPolynomial(1)}
}

// ToPower raises p to n by repeated squaring.
func (p Polynomial) ToPower(n uint) Polynomial {
	switch n {
	case 0:
		return ConstPolynomial(1)
	case 1:
		return p
	}
	half := p.ToPower(n / 2)
	result := half.Mul(half)
	if n%2 == 1 {
		result = result.Mul(p)
	}
	return result
}

// DerivativeBy differentiates p term by term.
func (p Polynomial) DerivativeBy(v Indeterminate) Polynomial {
	var terms []Term
	for _, t := range p.terms {
		terms = append(terms, t.DerivativeBy(v)...)
	}
	return NewPolynomial(terms...)
}

// ============================================================
// Inspection
// ============================================================

// Variables returns the distinct indeterminates of p in ascending order.
func (p Polynomial) Variables() []Indeterminate {
	return sortedVariables(collectVariables(set.New[Indeterminate](0), p))
}

func (p Polynomial) contains(v Indeterminate) bool {
	for _, t := range p.terms {
		if t.powers[v] > 0 {
			return true
		}
	}
	return false
}

func collectVariables(s *set.Set[Indeterminate], polys ...Polynomial) *set.Set[Indeterminate] {
	for _, p := range polys {
		for _, t := range p.terms {
			for v := range t.powers {
				s.Insert(v)
			}
		}
	}
	return s
}

func sortedVariables(s *set.Set[Indeterminate]) []Indeterminate {
	vars := s.Slice()
	slices.SortFunc(vars, Indeterminate.Compare)
	return vars
}

// Value evaluates p with the given bindings.
func (p Polynomial) Value(bindings map[Indeterminate]float64) (float64, error) {
	var sum float64
	for _, t := range p.terms {
		v, err := t.Value(bindings)
		if err != nil {
			return 0, fmt.Errorf("evaluate %s: %w", p, err)
		}
		sum += v
	}
	return sum, nil
}

func (p Polynomial) String() string { return p.render(Term.String) }

// Format renders p with the number conventions of tag.
func (p Polynomial) Format(tag language.Tag) string {
	return p.render(func(t Term) string { return t.Format(tag) })
}

func (p Polynomial) render(term func(Term) string) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		if i > 0 && t.HasPositiveCoefficient() {
			b.WriteByte('+')
		}
		b.WriteString(term(t))
	}
	return b.String()
}
