package gopoly

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func superscript(n uint) string {
	digits := strconv.FormatUint(uint64(n), 10)
	var b strings.Builder
	for _, d := range digits {
		b.WriteRune(superscriptDigits[d-'0'])
	}
	return b.String()
}

// superscriptValue maps a superscript digit back to its value.
func superscriptValue(r rune) (uint, bool) {
	for i, s := range superscriptDigits {
		if s == r {
			return uint(i), true
		}
	}
	return 0, false
}

// formatInvariant prints c with at most 15 significant digits.
func formatInvariant(c float64) string { return strconv.FormatFloat(c, 'g', 15, 64) }

// numberFormatter returns a coefficient formatter for tag. The invariant
// form is used for language.Und.
func numberFormatter(tag language.Tag) func(float64) string {
	if tag == language.Und {
		return formatInvariant
	}
	p := message.NewPrinter(tag)
	return func(c float64) string {
		rounded, err := strconv.ParseFloat(formatInvariant(c), 64)
		if err != nil {
			rounded = c
		}
		return p.Sprint(rounded)
	}
}
