package gopoly

import (
	"cmp"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// reservedSymbol is how the substitution placeholder renders. It never
// parses back into an Indeterminate.
const reservedSymbol = '$'

// Indeterminate is a single-symbol variable. The placeholder used by
// self-referential substitution is a distinct value that cannot be built
// with Var.
type Indeterminate struct {
	sym         rune
	placeholder bool
}

// placeholder is the engine-reserved indeterminate used to swap a variable
// out of its own replacement.
var placeholder = Indeterminate{sym: reservedSymbol, placeholder: true}

// Var returns the indeterminate named by sym.
func Var(sym rune) Indeterminate { return Indeterminate{sym: sym} }

// ParseIndeterminate reads a single-letter indeterminate name.
func ParseIndeterminate(s string) (Indeterminate, error) {
	if s == string(reservedSymbol) {
		return Indeterminate{}, fmt.Errorf("%q: %w", s, ErrReservedIndeterminate)
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) || !unicode.IsLetter(r) {
		return Indeterminate{}, fmt.Errorf("%q: %w", s, ErrInvalidIndeterminate)
	}
	return Var(r), nil
}

func (v Indeterminate) Symbol() rune   { return v.sym }
func (v Indeterminate) String() string { return string(v.sym) }

// Compare orders user indeterminates by symbol; the placeholder sorts last.
func (v Indeterminate) Compare(o Indeterminate) int {
	if v.placeholder != o.placeholder {
		if v.placeholder {
			return 1
		}
		return -1
	}
	return cmp.Compare(v.sym, o.sym)
}

// Term returns the monomial 1·v.
func (v Indeterminate) Term() Term { return NewTerm(1, v, 1) }

// Polynomial returns the polynomial v.
func (v Indeterminate) Polynomial() Polynomial { return v.Term().Polynomial() }
