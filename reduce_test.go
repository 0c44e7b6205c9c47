package gopoly_test

import (
	"errors"
	"testing"

	"github.com/njchilds90/gopoly"
)

// ============================================================
// ReduceBy
// ============================================================

func TestReduceBy(t *testing.T) {
	tests := []struct {
		name                string
		p, d                string
		quotient, remainder string
	}{
		{"exact", "x²-1", "x+1", "x-1", "0"},
		{"remainder", "x²+1", "x+1", "x-1", "2"},
		{"constant divisor", "4x+2", "2", "2x+1", "0"},
		{"nothing divisible", "y+1", "x+1", "0", "y+1"},
		{"zero dividend", "0", "x+1", "0", "0"},
		{"multivariate exact", "x²y+xy²", "x+y", "xy", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r, err := mustPoly(t, tt.p).ReduceBy(mustPoly(t, tt.d))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !q.Equal(mustPoly(t, tt.quotient)) {
				t.Errorf("quotient: want %s, got %s", tt.quotient, q)
			}
			if !r.Equal(mustPoly(t, tt.remainder)) {
				t.Errorf("remainder: want %s, got %s", tt.remainder, r)
			}
		})
	}
}

func TestReduceBy_Identity(t *testing.T) {
	// dividend = quotient·divisor + remainder holds for any split.
	p := mustPoly(t, "x³y+2x²-y+5")
	d := mustPoly(t, "xy-1")
	q, r, err := p.ReduceBy(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := q.Mul(d).Add(r); !got.Equal(p) {
		t.Errorf("want %s, got %s", p, got)
	}
}

func TestReduceBy_SinglePivotIsNotMinimal(t *testing.T) {
	// The pivot of x+y is x, so y² is never reduced.
	q, r, err := mustPoly(t, "y²+x").ReduceBy(mustPoly(t, "x+y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.EqualConst(1) || !r.Equal(mustPoly(t, "y²-y")) {
		t.Errorf("want quotient 1 remainder y²-y, got %s and %s", q, r)
	}
}

func TestReduceBy_ZeroDivisor(t *testing.T) {
	if _, _, err := x.Polynomial().ReduceBy(gopoly.Polynomial{}); !errors.Is(err, gopoly.ErrDivisionByZero) {
		t.Errorf("want ErrDivisionByZero, got %v", err)
	}
}

func TestReduce(t *testing.T) {
	q, err := mustPoly(t, "x²-1").Reduce(mustPoly(t, "x-1"))
	if err != nil || !q.Equal(mustPoly(t, "x+1")) {
		t.Errorf("want x+1, got %s (%v)", q, err)
	}
	if _, err := mustPoly(t, "x²+1").Reduce(mustPoly(t, "x+1")); !errors.Is(err, gopoly.ErrNotDivisible) {
		t.Errorf("want ErrNotDivisible, got %v", err)
	}
}

func TestMod(t *testing.T) {
	r, err := mustPoly(t, "x²+1").Mod(mustPoly(t, "x+1"))
	if err != nil || !r.EqualConst(2) {
		t.Errorf("want 2, got %s (%v)", r, err)
	}
}

func TestPolynomial_TryDivide(t *testing.T) {
	if q, ok := mustPoly(t, "6x²+3x").TryDivide(mustPoly(t, "3x")); !ok || !q.Equal(mustPoly(t, "2x+1")) {
		t.Errorf("want 2x+1, got %s (%v)", q, ok)
	}
	if _, ok := mustPoly(t, "x+1").TryDivide(x.Polynomial()); ok {
		t.Errorf("x+1 is not divisible by x")
	}
	if _, ok := x.Polynomial().TryDivide(gopoly.Polynomial{}); ok {
		t.Errorf("division by zero must not succeed")
	}
}
