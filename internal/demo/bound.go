package demo

import (
	"fmt"
	"math"

	"github.com/masmgr/klmax-go/config"
)

// BoundReport summarizes how normalized divergences of random pairs
// relate to the [0,1] range.
type BoundReport struct {
	Seed       uint64
	Trials     int
	Violations int
	Errors     int
	MinNKL     float64
	MaxNKL     float64
	Degenerate int
	// First pair outside the range or failing to compare, if any.
	Counterexample *Trial
}

// Holds returns true if every trial stayed within the range.
func (r BoundReport) Holds() bool {
	return r.Violations == 0 && r.Errors == 0
}

// CheckBound draws random pairs and counts normalized divergences that
// fall outside [-tolerance, 1+tolerance].
func CheckBound(demo config.DemoConfig, bound config.BoundConfig) BoundReport {
	gen := NewGenerator(demo)
	report := BoundReport{
		Seed:   gen.Seed(),
		Trials: bound.Trials,
		MinNKL: math.Inf(1),
		MaxNKL: math.Inf(-1),
	}

	for i := 0; i < bound.Trials; i++ {
		pair := gen.Next()
		trial := NewTrial(fmt.Sprintf("bound-%d", i+1), TrialRandom, pair.V1, pair.V2)
		trial.MaxValue = pair.MaxValue

		if !trial.OK() {
			report.Errors++
			report.keep(trial)
			continue
		}

		nkl := trial.Comparison.NKL
		if trial.Comparison.Degenerate {
			report.Degenerate++
		}
		report.MinNKL = math.Min(report.MinNKL, nkl)
		report.MaxNKL = math.Max(report.MaxNKL, nkl)

		if math.IsNaN(nkl) || nkl < -bound.Tolerance || nkl > 1+bound.Tolerance {
			report.Violations++
			report.keep(trial)
		}
	}

	if bound.Trials == 0 || report.Errors == bound.Trials {
		report.MinNKL, report.MaxNKL = 0, 0
	}
	return report
}

func (r *BoundReport) keep(t Trial) {
	if r.Counterexample == nil {
		r.Counterexample = &t
	}
}
