package divergence

import (
	"fmt"
	"math"
)

// maxExactInteger is the largest integer magnitude float64 represents exactly.
const maxExactInteger = 1 << 53

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// Quantum returns the smallest total both sums can be rescaled to.
// Totals must be positive whole numbers.
func Quantum(s1, s2 float64) (float64, error) {
	if s1 <= 0 || s2 <= 0 {
		return 0, ErrEmptyDistribution
	}
	if !isWhole(s1) || !isWhole(s2) {
		return 0, fmt.Errorf("%w: totals %g and %g", ErrNonIntegralQuantum, s1, s2)
	}

	a, b := int64(s1), int64(s2)
	step := a / GCD(a, b)
	if step > maxExactInteger/b {
		return 0, fmt.Errorf("%w: common quantum of %g and %g overflows", ErrDomain, s1, s2)
	}
	return float64(step * b), nil
}

func isWhole(v float64) bool {
	return v == math.Trunc(v) && v <= maxExactInteger
}
