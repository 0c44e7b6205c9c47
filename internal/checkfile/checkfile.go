// Package checkfile runs symbolic identity checks described in YAML.
//
// A check file looks like:
//
//	checks:
//	  - name: quotient rule
//	    expr: 1/x
//	    derivative_by: x
//	    expect: -1/x²
//	  - name: shift
//	    expr: x²
//	    substitute:
//	      x: x+1
//	    expect: x²+2x+1
//
// Each check parses expr, differentiates it when derivative_by is set, then
// applies the substitutions in ascending variable order and compares the
// result with expect.
package checkfile

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/njchilds90/gopoly"
	"gopkg.in/yaml.v3"
)

// File is a parsed check document.
type File struct {
	Checks []Check `yaml:"checks"`

	SourceFile string `yaml:"-"`
}

// Check is one identity to verify.
type Check struct {
	Name         string            `yaml:"name"`
	Expr         string            `yaml:"expr"`
	DerivativeBy string            `yaml:"derivative_by,omitempty"`
	Substitute   map[string]string `yaml:"substitute,omitempty"`
	Expect       string            `yaml:"expect"`
}

// Result reports the outcome of a single check.
type Result struct {
	Name   string
	Got    string
	Want   string
	Passed bool
	Err    error
}

// Load reads and validates the check file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	f.SourceFile = path
	return f, nil
}

// Parse decodes and validates a check document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports the first structurally incomplete check.
func (f *File) Validate() error {
	if len(f.Checks) == 0 {
		return ErrNoChecks
	}
	for i, c := range f.Checks {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("check %d: %w", i+1, err)
		}
	}
	return nil
}

func (c Check) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	if c.Expr == "" {
		return ErrMissingExpr
	}
	if c.Expect == "" {
		return ErrMissingExpect
	}
	return nil
}

// Run evaluates every check in order.
func (f *File) Run() []Result {
	results := make([]Result, 0, len(f.Checks))
	for _, c := range f.Checks {
		results = append(results, c.Run())
	}
	return results
}

// Run applies the check's operations and compares the outcome with Expect.
// Rational results are equal when their difference is zero.
func (c Check) Run() Result {
	res := Result{Name: c.Name, Want: c.Expect}
	got, err := c.evaluate()
	if err != nil {
		res.Err = err
		return res
	}
	want, err := gopoly.Parse(c.Expect)
	if err != nil {
		res.Err = fmt.Errorf("expect: %w", err)
		return res
	}
	res.Got = render(got)
	res.Passed = got.Sub(want).IsZero()
	return res
}

// render prints d in polynomial form when its denominator is 1.
func render(d gopoly.Division) string {
	if p, ok := d.AsPolynomial(); ok {
		return p.String()
	}
	return d.String()
}

func (c Check) evaluate() (gopoly.Division, error) {
	d, err := gopoly.Parse(c.Expr)
	if err != nil {
		return gopoly.Division{}, fmt.Errorf("expr: %w", err)
	}
	if c.DerivativeBy != "" {
		v, err := gopoly.ParseIndeterminate(c.DerivativeBy)
		if err != nil {
			return gopoly.Division{}, fmt.Errorf("derivative_by: %w", err)
		}
		d = d.DerivativeBy(v)
	}
	for _, name := range slices.Sorted(maps.Keys(c.Substitute)) {
		v, err := gopoly.ParseIndeterminate(name)
		if err != nil {
			return gopoly.Division{}, fmt.Errorf("substitute: %w", err)
		}
		value, err := gopoly.Parse(c.Substitute[name])
		if err != nil {
			return gopoly.Division{}, fmt.Errorf("substitute %s: %w", name, err)
		}
		if p, ok := value.AsPolynomial(); ok {
			d, err = d.Composition(v, p)
		} else {
			d, err = d.CompositionDivision(v, value)
		}
		if err != nil {
			return gopoly.Division{}, err
		}
	}
	return d, nil
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
