package gopoly_test

import (
	"testing"

	"github.com/njchilds90/gopoly"
)

// ============================================================
// Simplify
// ============================================================

func sameTerms(got, want []gopoly.Term) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			return false
		}
	}
	return true
}

func TestSimplify_ZeroSum(t *testing.T) {
	m := term(2, a, uint(1), c, uint(3))
	if got := gopoly.Simplify([]gopoly.Term{m, m.Neg()}); len(got) != 0 {
		t.Errorf("want empty, got %v", got)
	}
}

func TestSimplify_Ordering(t *testing.T) {
	input := []gopoly.Term{
		gopoly.Const(1), b.Term(), gopoly.Const(2), b.Term(), a.Term(),
		term(1, a, uint(1), b, uint(1)),
		term(1, a, uint(1), b, uint(1), c, uint(1)),
		term(1, a, uint(2)),
		term(1, b, uint(2)),
	}
	want := []gopoly.Term{
		term(1, a, uint(1), b, uint(1), c, uint(1)),
		term(1, a, uint(2)),
		term(1, b, uint(2)),
		term(1, a, uint(1), b, uint(1)),
		a.Term(),
		term(2, b, uint(1)),
		gopoly.Const(3),
	}
	got := gopoly.Simplify(input)
	if !sameTerms(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestSimplify_FirstSeenTieBreak(t *testing.T) {
	// xy and ab share degree and greatest power; the first one seen leads.
	got := gopoly.Simplify([]gopoly.Term{term(1, x, uint(1), y, uint(1)), term(1, a, uint(1), y, uint(1))})
	want := []gopoly.Term{term(1, x, uint(1), y, uint(1)), term(1, a, uint(1), y, uint(1))}
	if !sameTerms(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	once := gopoly.Simplify([]gopoly.Term{
		x.Term(), gopoly.Const(4), term(3, x, uint(2)), term(-1, x, uint(1), y, uint(1)), x.Term(),
	})
	twice := gopoly.Simplify(once)
	if !sameTerms(once, twice) {
		t.Errorf("want %v, got %v", once, twice)
	}
}

func TestSimplify_DropsZeroTerms(t *testing.T) {
	got := gopoly.Simplify([]gopoly.Term{gopoly.Const(0), x.Term(), gopoly.Term{}})
	if !sameTerms(got, []gopoly.Term{x.Term()}) {
		t.Errorf("want [x], got %v", got)
	}
}

func TestSimplify_DoesNotMutateInput(t *testing.T) {
	input := []gopoly.Term{x.Term(), x.Term()}
	gopoly.Simplify(input)
	if !input[0].Equal(x.Term()) || !input[1].Equal(x.Term()) {
		t.Errorf("input was modified: %v", input)
	}
}
