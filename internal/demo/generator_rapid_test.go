package demo

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/masmgr/klmax-go/config"
)

func TestRapidGenerator_WithinBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		minLength := rapid.IntRange(1, 10).Draw(t, "minLength")
		cfg := config.DemoConfig{
			Seed:      rapid.Uint64Range(1, 1<<40).Draw(t, "seed"),
			MinLength: minLength,
			MaxLength: rapid.IntRange(minLength, 20).Draw(t, "maxLength"),
			MaxValue:  rapid.IntRange(1, 100).Draw(t, "maxValue"),
		}

		p := NewGenerator(cfg).Next()

		if len(p.V1) != len(p.V2) {
			t.Fatalf("lengths differ: %d vs %d", len(p.V1), len(p.V2))
		}
		if len(p.V1) < cfg.MinLength || len(p.V1) > cfg.MaxLength {
			t.Fatalf("length %d outside [%d,%d]", len(p.V1), cfg.MinLength, cfg.MaxLength)
		}
		if p.MaxValue < 1 || p.MaxValue > cfg.MaxValue {
			t.Fatalf("max value %d outside [1,%d]", p.MaxValue, cfg.MaxValue)
		}
		for i := range p.V1 {
			for _, v := range []float64{p.V1[i], p.V2[i]} {
				if v < 1 || v > float64(p.MaxValue) {
					t.Fatalf("entry %g outside [1,%d]", v, p.MaxValue)
				}
			}
		}
	})
}

func TestRapidRun_RandomTrialsSucceed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config.DefaultConfig().Demo
		cfg.Seed = rapid.Uint64Range(1, 1<<40).Draw(t, "seed")
		cfg.Trials = rapid.IntRange(1, 20).Draw(t, "trials")

		result := Run(cfg, RunOptions{SkipScenarios: true})
		for _, trial := range result.Trials {
			if !trial.OK() {
				t.Fatalf("trial %s on %v/%v failed: %v", trial.Name, trial.V1, trial.V2, trial.Err)
			}
			nkl := trial.Comparison.NKL
			if nkl < -1e-9 || nkl > 1+1e-9 {
				t.Fatalf("NKL(%v, %v) = %g outside [0,1]", trial.V1, trial.V2, nkl)
			}
		}
	})
}
