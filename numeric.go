package gopoly

import "math"

// Tolerance is the relative tolerance used for every coefficient
// comparison. Differences below Tolerance·max(1, |a|, |b|) are equal.
const Tolerance = 1e-12

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Tolerance*scale
}

func approxZero(a float64) bool { return approxEqual(a, 0) }
