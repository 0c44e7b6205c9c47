// Package gopoly provides a deterministic polynomial algebra kernel for Go.
//
// Design goals:
//   - Multivariate polynomials over single-rune indeterminates
//   - Real coefficients compared with a fixed relative tolerance
//   - Every value is canonical: built through the simplifier, never mutated
//   - Exact term division and restricted single-pivot long division
//   - Symbolic derivatives and substitution for polynomials and
//     rational expressions
//
// The three value types are Term (a monomial), Polynomial (a canonical sum
// of terms) and Division (a numerator/denominator pair that collapses to a
// polynomial whenever the numerator is exactly divisible).
package gopoly

// Version is reported by the MCP server and the polycalc CLI.
const Version = "0.1.0"
