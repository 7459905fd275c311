// Package divergence computes the Kullback-Leibler divergence between
// multiplicity distributions and its normalization against the most
// divergent distribution sharing the same quantum.
package divergence

import (
	"fmt"
	"math"
)

// KL returns the base-2 Kullback-Leibler divergence of d1 from d2:
//
//	KL(d1|d2) = Σ (d1[i]/S) · log2(d1[i]/d2[i]),  S = sum(d1)
//
// Both distributions are expected to share the same quantum (equal sums);
// this is not enforced. Events absent from d1 contribute nothing. An event
// present in d1 but absent from d2 makes the divergence undefined. Entries
// of d2 facing an absent event are not inspected.
func KL(d1, d2 Distribution) (float64, error) {
	if err := checkLengths(d1, d2); err != nil {
		return 0, err
	}
	if err := d1.Validate(); err != nil {
		return 0, fmt.Errorf("first distribution: %w", err)
	}

	s := d1.Sum()
	k := 0.0
	for i := range d1 {
		if d1[i] == 0 {
			continue
		}
		if !(d2[i] > 0) || math.IsInf(d2[i], 1) {
			return 0, fmt.Errorf("%w: event %d has multiplicity %g against %g", ErrDomain, i, d1[i], d2[i])
		}
		k += (d1[i] / s) * math.Log2(d1[i]/d2[i])
	}
	return k, nil
}
