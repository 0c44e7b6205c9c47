package gopoly

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// ============================================================
// Term: coefficient × product of indeterminate powers
// ============================================================

// Term is a monomial. The zero value is the zero monomial. A term never
// holds a zero power and a zero coefficient always comes with no powers.
type Term struct {
	coeff  float64
	powers map[Indeterminate]uint
}

// Const returns the constant monomial c.
func Const(c float64) Term {
	if approxZero(c) {
		return Term{}
	}
	return Term{coeff: c}
}

// NewTerm returns coeff·v^power.
func NewTerm(coeff float64, v Indeterminate, power uint) Term {
	if power == 0 {
		return Const(coeff)
	}
	if approxZero(coeff) {
		return Term{}
	}
	return Term{coeff: coeff, powers: map[Indeterminate]uint{v: power}}
}

func newTermWithPowers(coeff float64, powers map[Indeterminate]uint) Term {
	if approxZero(coeff) {
		return Term{}
	}
	if len(powers) == 0 {
		powers = nil
	}
	return Term{coeff: coeff, powers: powers}
}

func (t Term) Coefficient() float64 { return t.coeff }

// Power returns the exponent of v, 0 when v does not occur.
func (t Term) Power(v Indeterminate) uint { return t.powers[v] }

func (t Term) IsZero() bool                 { return t.coeff == 0 }
func (t Term) IsConstant() bool             { return len(t.powers) == 0 }
func (t Term) HasPositiveCoefficient() bool { return t.coeff > 0 }

// Variables returns the indeterminates of t in ascending order.
func (t Term) Variables() []Indeterminate {
	return slices.SortedFunc(maps.Keys(t.powers), Indeterminate.Compare)
}

// PowerSum is the total degree of t.
func (t Term) PowerSum() uint {
	var sum uint
	for _, p := range t.powers {
		sum += p
	}
	return sum
}

// GreatestPowerIndeterminate returns the indeterminate with the highest
// exponent. Ties go to the greatest indeterminate. A constant returns the
// zero Indeterminate and 0.
func (t Term) GreatestPowerIndeterminate() (Indeterminate, uint) {
	var (
		best  Indeterminate
		power uint
	)
	for v, p := range t.powers {
		if p > power || (p == power && v.Compare(best) > 0) {
			best, power = v, p
		}
	}
	return best, power
}

func (t Term) Equal(o Term) bool {
	return approxEqual(t.coeff, o.coeff) && maps.Equal(t.powers, o.powers)
}

// EqualConst reports whether t is the constant c.
func (t Term) EqualConst(c float64) bool {
	return t.IsConstant() && approxEqual(t.coeff, c)
}

// signature identifies the power mapping of t, independent of coefficient.
func (t Term) signature() string {
	var b strings.Builder
	for _, v := range t.Variables() {
		if v.placeholder {
			b.WriteByte(0)
		}
		b.WriteRune(v.sym)
		b.WriteString(strconv.FormatUint(uint64(t.powers[v]), 10))
		b.WriteByte(';')
	}
	return b.String()
}

// ============================================================
// Arithmetic
// ============================================================

func (t Term) Mul(o Term) Term {
	coeff := t.coeff * o.coeff
	if approxZero(coeff) {
		return Term{}
	}
	powers := make(map[Indeterminate]uint, len(t.powers)+len(o.powers))
	for v, p := range t.powers {
		powers[v] = p
	}
	for v, p := range o.powers {
		powers[v] += p
	}
	return newTermWithPowers(coeff, powers)
}

func (t Term) Scale(f float64) Term { return newTermWithPowers(t.coeff*f, maps.Clone(t.powers)) }
func (t Term) Neg() Term            { return t.Scale(-1) }

// Div divides the coefficient of t by c.
func (t Term) Div(c float64) (Term, error) {
	if c == 0 {
		return Term{}, ErrDivisionByZero
	}
	return t.Scale(1 / c), nil
}

// ToPower raises t to n. Any term to the power 0 is 1.
func (t Term) ToPower(n uint) Term {
	if n == 0 {
		return Const(1)
	}
	powers := make(map[Indeterminate]uint, len(t.powers))
	for v, p := range t.powers {
		powers[v] = p * n
	}
	return newTermWithPowers(math.Pow(t.coeff, float64(n)), powers)
}

// TryDivide divides t by d when every indeterminate of d occurs in t with
// at least the same power. It reports false otherwise, or when d is zero.
func (t Term) TryDivide(d Term) (Term, bool) {
	if d.IsZero() {
		return Term{}, false
	}
	for v, p := range d.powers {
		if t.powers[v] < p {
			return Term{}, false
		}
	}
	powers := make(map[Indeterminate]uint, len(t.powers))
	for v, p := range t.powers {
		if rest := p - d.powers[v]; rest > 0 {
			powers[v] = rest
		}
	}
	return newTermWithPowers(t.coeff/d.coeff, powers), true
}

// without returns t with v removed.
func (t Term) without(v Indeterminate) Term {
	powers := maps.Clone(t.powers)
	delete(powers, v)
	return newTermWithPowers(t.coeff, powers)
}

// ============================================================
// Derivative and composition
// ============================================================

// DerivativeBy applies the power rule. The result is empty when v does not
// occur in t.
func (t Term) DerivativeBy(v Indeterminate) []Term {
	p := t.powers[v]
	if p == 0 {
		return nil
	}
	powers := maps.Clone(t.powers)
	if p == 1 {
		delete(powers, v)
	} else {
		powers[v] = p - 1
	}
	return []Term{newTermWithPowers(t.coeff*float64(p), powers)}
}

// Composition substitutes v with replacement.
func (t Term) Composition(v Indeterminate, replacement Polynomial) Polynomial {
	p := t.powers[v]
	if p == 0 {
		return t.Polynomial()
	}
	return replacement.ToPower(p).MulTerm(t.without(v))
}

// CompositionDivision substitutes v with a rational replacement.
func (t Term) CompositionDivision(v Indeterminate, replacement Division) Division {
	p := t.powers[v]
	if p == 0 {
		return t.Polynomial().Division()
	}
	return replacement.ToPower(p).MulPolynomial(t.without(v).Polynomial())
}

// ============================================================
// Evaluation and rendering
// ============================================================

// Value evaluates t with the given bindings.
func (t Term) Value(bindings map[Indeterminate]float64) (float64, error) {
	result := t.coeff
	for _, v := range t.Variables() {
		x, ok := bindings[v]
		if !ok {
			return 0, fmt.Errorf("%s: %w", v, ErrUnbound)
		}
		result *= math.Pow(x, float64(t.powers[v]))
	}
	return result, nil
}

// Polynomial returns the single-term polynomial t.
func (t Term) Polynomial() Polynomial { return NewPolynomial(t) }

func (t Term) String() string { return t.render(formatInvariant) }

// Format renders t with the number conventions of tag.
func (t Term) Format(tag language.Tag) string { return t.render(numberFormatter(tag)) }

func (t Term) render(num func(float64) string) string {
	if t.IsConstant() {
		return num(t.coeff)
	}
	var b strings.Builder
	switch {
	case approxEqual(t.coeff, 1):
	case approxEqual(t.coeff, -1):
		b.WriteByte('-')
	default:
		b.WriteString(num(t.coeff))
	}
	for _, v := range t.Variables() {
		b.WriteString(v.String())
		if p := t.powers[v]; p > 1 {
			b.WriteString(superscript(p))
		}
	}
	return b.String()
}
