package gopoly

import (
	"strconv"
	"strings"
)

// ============================================================
// LaTeX rendering
// ============================================================

// LaTeX renders t for a LaTeX math environment, e.g. 2.1 a c^{3}.
func (t Term) LaTeX() string {
	if t.IsConstant() {
		return formatInvariant(t.coeff)
	}
	parts := make([]string, 0, len(t.powers)+1)
	switch {
	case approxEqual(t.coeff, 1):
	case approxEqual(t.coeff, -1):
		parts = append(parts, "-")
	default:
		parts = append(parts, formatInvariant(t.coeff))
	}
	for _, v := range t.Variables() {
		s := v.String()
		if p := t.powers[v]; p > 1 {
			s += "^{" + strconv.FormatUint(uint64(p), 10) + "}"
		}
		parts = append(parts, s)
	}
	if parts[0] == "-" {
		return "-" + strings.Join(parts[1:], " ")
	}
	return strings.Join(parts, " ")
}

func (p Polynomial) LaTeX() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		s := t.LaTeX()
		switch {
		case i == 0:
			b.WriteString(s)
		case t.HasPositiveCoefficient():
			b.WriteString(" + " + s)
		default:
			b.WriteString(" - " + strings.TrimPrefix(s, "-"))
		}
	}
	return b.String()
}

// LaTeX renders d as a \frac, or as a plain polynomial when the
// denominator is 1.
func (d Division) LaTeX() string {
	switch {
	case d.IsNaN():
		return `\mathrm{NaN}`
	case d.IsZero():
		return "0"
	case d.IsPolynomial():
		return d.numerator.LaTeX()
	}
	return `\frac{` + d.numerator.LaTeX() + `}{` + d.denominator.LaTeX() + `}`
}
