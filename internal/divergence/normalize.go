package divergence

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Normalization holds two distributions brought to a common quantum together
// with the reference distribution that maximizes divergence from V1.
type Normalization struct {
	V1        Distribution
	V2        Distribution
	Reference Distribution
	Quantum   float64 // common total of V1 and V2
	Floor     float64 // mass of every reference entry but one
	Rescaled  bool    // false when the inputs already shared a quantum
}

// Comparison is the result of comparing two distributions.
type Comparison struct {
	KL         float64 // divergence of the inputs as given
	NKL        float64 // normalized divergence in the common quantum
	Degenerate bool    // the maximum divergence was 0, NKL defaults to 0
	Normalization
}

// Normalize brings v1 and v2 to a common quantum and builds the reference
// distribution for v1. When the totals differ, both are rescaled to the
// least common multiple of the totals and the floor becomes 1/lcm;
// otherwise the inputs are kept and the floor is 1.
// The inputs are never modified.
func Normalize(v1, v2 Distribution) (Normalization, error) {
	if err := checkLengths(v1, v2); err != nil {
		return Normalization{}, err
	}
	if err := v1.Validate(); err != nil {
		return Normalization{}, fmt.Errorf("first distribution: %w", err)
	}
	if err := v2.Validate(); err != nil {
		return Normalization{}, fmt.Errorf("second distribution: %w", err)
	}

	n := Normalization{
		V1:      v1.Clone(),
		V2:      v2.Clone(),
		Quantum: v1.Sum(),
		Floor:   1,
	}

	s1, s2 := v1.Sum(), v2.Sum()
	if s1 != s2 {
		q, err := Quantum(s1, s2)
		if err != nil {
			return Normalization{}, err
		}
		rescale(n.V1, q, s1)
		rescale(n.V2, q, s2)
		n.Quantum = q
		n.Floor = 1 / q
		n.Rescaled = true
	}

	n.Reference = Reference(n.V1, n.Floor)
	return n, nil
}

// rescale multiplies every entry by quantum/total in place.
func rescale(d Distribution, quantum, total float64) {
	floats.Scale(quantum/total, d)
}

// Reference returns the distribution with the same total as v1 that
// diverges the most from it given a minimal mass of floor per event: every
// entry holds floor except the one at v1's minimum, which takes the rest.
func Reference(v1 Distribution, floor float64) Distribution {
	m := make(Distribution, len(v1))
	if len(v1) == 0 {
		return m
	}
	for i := range m {
		m[i] = floor
	}
	m[v1.MinIndex()] += v1.Sum() - m.Sum()
	return m
}

// NormalizedKL returns KL(v1|v2) / KL(v1|m) computed in the common quantum
// of v1 and v2, where m is the reference distribution of v1. It returns 0
// when KL(v1|m) is 0. For integer multiplicities the result lies in [0,1].
// NKL is not symmetric.
func NormalizedKL(v1, v2 Distribution) (float64, error) {
	n, err := Normalize(v1, v2)
	if err != nil {
		return 0, err
	}
	nkl, _, err := n.normalizedKL()
	return nkl, err
}

func (n Normalization) normalizedKL() (float64, bool, error) {
	denom, err := KL(n.V1, n.Reference)
	if err != nil {
		return 0, false, fmt.Errorf("maximum divergence: %w", err)
	}
	if denom == 0 {
		return 0, true, nil
	}

	k, err := KL(n.V1, n.V2)
	if err != nil {
		return 0, false, err
	}
	return k / denom, false, nil
}

// Compare computes both the raw divergence of the inputs and their
// normalized divergence.
func Compare(v1, v2 Distribution) (Comparison, error) {
	n, err := Normalize(v1, v2)
	if err != nil {
		return Comparison{}, err
	}

	k, err := KL(v1, v2)
	if err != nil {
		return Comparison{}, err
	}

	nkl, degenerate, err := n.normalizedKL()
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		KL:            k,
		NKL:           nkl,
		Degenerate:    degenerate,
		Normalization: n,
	}, nil
}
