package demo

import (
	"fmt"

	"github.com/masmgr/klmax-go/config"
	"github.com/masmgr/klmax-go/internal/divergence"
)

// TrialKind tells where the distributions of a trial came from.
type TrialKind string

const (
	TrialRandom   TrialKind = "random"
	TrialScenario TrialKind = "scenario"
	TrialManual   TrialKind = "manual"
)

// Trial is one comparison of two distributions.
type Trial struct {
	Name       string
	Kind       TrialKind
	V1         divergence.Distribution
	V2         divergence.Distribution
	MaxValue   int // only set for random trials
	Comparison divergence.Comparison
	Err        error
}

// OK returns true if the comparison succeeded.
func (t Trial) OK() bool {
	return t.Err == nil
}

// NewTrial compares v1 with v2 and records the outcome.
func NewTrial(name string, kind TrialKind, v1, v2 divergence.Distribution) Trial {
	trial := Trial{Name: name, Kind: kind, V1: v1, V2: v2}
	trial.Comparison, trial.Err = divergence.Compare(v1, v2)
	return trial
}

// RunOptions selects which parts of the demonstration run.
type RunOptions struct {
	SkipRandom    bool
	SkipScenarios bool
}

// Result holds every trial of a demonstration run.
type Result struct {
	Seed   uint64
	Trials []Trial
}

// Random returns the random trials.
func (r Result) Random() []Trial {
	return r.filter(TrialRandom)
}

// Scenarios returns the fixed scenario trials.
func (r Result) Scenarios() []Trial {
	return r.filter(TrialScenario)
}

func (r Result) filter(kind TrialKind) []Trial {
	var out []Trial
	for _, t := range r.Trials {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Run executes the random trials followed by the fixed scenarios.
func Run(cfg config.DemoConfig, opts RunOptions) Result {
	gen := NewGenerator(cfg)
	result := Result{Seed: gen.Seed()}

	if !opts.SkipRandom {
		for i := 0; i < cfg.Trials; i++ {
			pair := gen.Next()
			trial := NewTrial(fmt.Sprintf("random-%d", i+1), TrialRandom, pair.V1, pair.V2)
			trial.MaxValue = pair.MaxValue
			result.Trials = append(result.Trials, trial)
		}
	}

	if !opts.SkipScenarios {
		for _, s := range Scenarios() {
			result.Trials = append(result.Trials, NewTrial(s.Name, TrialScenario, s.V1, s.V2))
		}
	}

	return result
}
