package divergence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Distribution is a multiplicity vector: entry i counts occurrences of event i.
// Two distributions are comparable when they have the same length.
type Distribution []float64

// FromCounts converts integer multiplicities into a Distribution.
func FromCounts(counts []int) Distribution {
	d := make(Distribution, len(counts))
	for i, c := range counts {
		d[i] = float64(c)
	}
	return d
}

// Sum returns the total mass of the distribution.
func (d Distribution) Sum() float64 {
	if len(d) == 0 {
		return 0
	}
	return floats.Sum(d)
}

// MinIndex returns the index of the smallest entry, preferring the first on ties.
// It returns -1 for an empty distribution.
func (d Distribution) MinIndex() int {
	if len(d) == 0 {
		return -1
	}
	return floats.MinIdx(d)
}

// Clone returns a copy that can be modified independently.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	copy(out, d)
	return out
}

// Validate checks that every entry is a finite non-negative number and
// that the distribution carries some mass.
func (d Distribution) Validate() error {
	for i, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: entry %d is not finite", ErrDomain, i)
		}
		if v < 0 {
			return fmt.Errorf("%w: entry %d is negative (%g)", ErrDomain, i, v)
		}
	}
	if d.Sum() <= 0 {
		return ErrEmptyDistribution
	}
	return nil
}

// String formats the distribution the way it is written on the command line.
func (d Distribution) String() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Parse reads a comma separated list of numbers, e.g. "5,4,3,2,1".
func Parse(s string) (Distribution, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil, ErrEmptyDistribution
	}

	fields := strings.Split(s, ",")
	d := make(Distribution, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid multiplicity %q: %w", f, err)
		}
		d = append(d, v)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func checkLengths(d1, d2 Distribution) error {
	if len(d1) != len(d2) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(d1), len(d2))
	}
	return nil
}
