package divergence

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when two distributions do not cover the same events.
	ErrLengthMismatch = errors.New("distributions have different lengths")

	// ErrDomain is returned when an entry makes the divergence undefined,
	// such as a zero reference entry facing a non-zero observed entry.
	ErrDomain = errors.New("divergence undefined")

	// ErrEmptyDistribution is returned for distributions whose total is zero.
	ErrEmptyDistribution = fmt.Errorf("%w: distribution has zero total", ErrDomain)

	// ErrNonIntegralQuantum is returned when the sums of two distributions
	// are not whole numbers and no common quantum can be derived.
	ErrNonIntegralQuantum = fmt.Errorf("%w: quantum requires whole-number totals", ErrDomain)
)
