package demo

import (
	"math/rand/v2"
	"time"

	"github.com/masmgr/klmax-go/config"
	"github.com/masmgr/klmax-go/internal/divergence"
)

// Pair is a randomly drawn pair of multiplicity distributions.
type Pair struct {
	V1       divergence.Distribution
	V2       divergence.Distribution
	MaxValue int // upper bound of the entries of this pair
}

// Generator draws random integer multiplicity distributions.
// Each pair has a length in [MinLength, MaxLength] and its own maximum
// value in [1, MaxValue]; entries are in [1, maximum value].
type Generator struct {
	cfg  config.DemoConfig
	seed uint64
	rng  *rand.Rand
}

// NewGenerator creates a generator. A zero seed is replaced by one taken
// from the clock so that unseeded runs differ.
func NewGenerator(cfg config.DemoConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Seed returns the seed in use, for reproducing a run.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Next draws the next pair.
func (g *Generator) Next() Pair {
	n := g.intRange(g.cfg.MinLength, g.cfg.MaxLength)
	maxValue := g.intRange(1, g.cfg.MaxValue)

	return Pair{
		V1:       g.vector(n, maxValue),
		V2:       g.vector(n, maxValue),
		MaxValue: maxValue,
	}
}

func (g *Generator) vector(n, maxValue int) divergence.Distribution {
	counts := make([]int, n)
	for i := range counts {
		counts[i] = g.intRange(1, maxValue)
	}
	return divergence.FromCounts(counts)
}

// intRange returns a value in [lo, hi], both inclusive.
func (g *Generator) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
