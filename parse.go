package gopoly

import (
	"fmt"
	"strconv"
	"unicode"
)

// ============================================================
// Parser
// ============================================================

// Parse reads a rational expression such as "(x+1)(x-1)/2y" or "2.1ac³".
// Products may be implicit, exponents are written with ^ or superscript
// digits, and indeterminates are single letters. Juxtaposed factors after a
// slash belong to the divisor, so "1/xy" is 1/(xy).
func Parse(s string) (Division, error) {
	p := &parser{src: []rune(s)}
	result, err := p.expr()
	if err != nil {
		return Division{}, err
	}
	p.skipSpace()
	if !p.done() {
		return Division{}, p.errorf("unexpected %q", p.peek())
	}
	return result, nil
}

// ParsePolynomial reads an expression that must reduce to a polynomial.
func ParsePolynomial(s string) (Polynomial, error) {
	d, err := Parse(s)
	if err != nil {
		return Polynomial{}, err
	}
	p, ok := d.AsPolynomial()
	if !ok {
		return Polynomial{}, fmt.Errorf("%q is not a polynomial: %w", s, ErrNotDivisible)
	}
	return p, nil
}

// MaxExponent is the largest exponent Parse and the power tool accept.
const MaxExponent = 1024

type parser struct {
	src []rune
	pos int
}

func (p *parser) done() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.done() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("position %d: %s: %w", p.pos, fmt.Sprintf(format, args...), ErrSyntax)
}

func (p *parser) expr() (Division, error) {
	result, err := p.term()
	if err != nil {
		return Division{}, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			next, err := p.term()
			if err != nil {
				return Division{}, err
			}
			result = result.Add(next)
		case '-':
			p.pos++
			next, err := p.term()
			if err != nil {
				return Division{}, err
			}
			result = result.Sub(next)
		default:
			return result, nil
		}
	}
}

func (p *parser) term() (Division, error) {
	result, err := p.factor()
	if err != nil {
		return Division{}, err
	}
	for {
		p.skipSpace()
		r := p.peek()
		switch {
		case r == '*':
			p.pos++
			next, err := p.factor()
			if err != nil {
				return Division{}, err
			}
			result = result.Mul(next)
		case r == '/':
			p.pos++
			next, err := p.divisor()
			if err != nil {
				return Division{}, err
			}
			if result, err = result.Quo(next); err != nil {
				return Division{}, fmt.Errorf("position %d: %w", p.pos, err)
			}
		case startsFactor(r):
			next, err := p.factor()
			if err != nil {
				return Division{}, err
			}
			result = result.Mul(next)
		default:
			return result, nil
		}
	}
}

// divisor reads the operand of '/'. Juxtaposed factors bind tighter than
// the slash, so "1/xy" is 1/(xy).
func (p *parser) divisor() (Division, error) {
	result, err := p.factor()
	if err != nil {
		return Division{}, err
	}
	for {
		p.skipSpace()
		if !startsFactor(p.peek()) {
			return result, nil
		}
		next, err := p.factor()
		if err != nil {
			return Division{}, err
		}
		result = result.Mul(next)
	}
}

func startsFactor(r rune) bool {
	return r == '(' || r == '.' || unicode.IsDigit(r) || (unicode.IsLetter(r) && r != reservedSymbol)
}

func (p *parser) factor() (Division, error) {
	p.skipSpace()
	switch p.peek() {
	case '-':
		p.pos++
		f, err := p.factor()
		return f.Neg(), err
	case '+':
		p.pos++
		return p.factor()
	}
	base, err := p.primary()
	if err != nil {
		return Division{}, err
	}
	n, ok, err := p.exponent()
	if err != nil || !ok {
		return base, err
	}
	return base.ToPower(n), nil
}

func (p *parser) exponent() (uint, bool, error) {
	if _, ok := superscriptValue(p.peek()); ok {
		var n uint
		for {
			d, ok := superscriptValue(p.peek())
			if !ok {
				return n, true, nil
			}
			n = n*10 + d
			p.pos++
			if n > MaxExponent {
				return 0, false, p.errorf("exponent exceeds %d", MaxExponent)
			}
		}
	}
	p.skipSpace()
	if p.peek() != '^' {
		return 0, false, nil
	}
	p.pos++
	p.skipSpace()
	start := p.pos
	for !p.done() && unicode.IsDigit(p.peek()) {
		p.pos++
	}
	n, err := strconv.ParseUint(string(p.src[start:p.pos]), 10, 32)
	if err != nil {
		return 0, false, p.errorf("exponent must be a non-negative integer")
	}
	if n > MaxExponent {
		return 0, false, p.errorf("exponent %d exceeds %d", n, MaxExponent)
	}
	return uint(n), true, nil
}

func (p *parser) primary() (Division, error) {
	p.skipSpace()
	r := p.peek()
	switch {
	case p.done():
		return Division{}, p.errorf("unexpected end of input")
	case r == '(':
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return Division{}, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return Division{}, p.errorf("missing ')'")
		}
		p.pos++
		return inner, nil
	case unicode.IsDigit(r) || r == '.':
		return p.number()
	case r == reservedSymbol:
		return Division{}, fmt.Errorf("position %d: %q: %w", p.pos, r, ErrReservedIndeterminate)
	case unicode.IsLetter(r):
		p.pos++
		return Var(r).Polynomial().Division(), nil
	}
	return Division{}, p.errorf("unexpected %q", r)
}

func (p *parser) number() (Division, error) {
	start := p.pos
	for !p.done() && (unicode.IsDigit(p.peek()) || p.peek() == '.') {
		p.pos++
	}
	if !p.done() && (p.peek() == 'e' || p.peek() == 'E') {
		save := p.pos
		p.pos++
		if p.peek() == '-' || p.peek() == '+' {
			p.pos++
		}
		if unicode.IsDigit(p.peek()) {
			for !p.done() && unicode.IsDigit(p.peek()) {
				p.pos++
			}
		} else {
			// "2e" is 2 times the indeterminate e
			p.pos = save
		}
	}
	c, err := strconv.ParseFloat(string(p.src[start:p.pos]), 64)
	if err != nil {
		return Division{}, p.errorf("invalid number %q", string(p.src[start:p.pos]))
	}
	return ConstPolynomial(c).Division(), nil
}
