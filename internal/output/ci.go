package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/masmgr/klmax-go/config"
)

// CITrialWriter writes trial reports as NDJSON (one JSON object per line) for CI pipelines.
type CITrialWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type        string  `json:"type"`
	TotalTrials int     `json:"totalTrials"`
	Failed      int     `json:"failed"`
	HighCount   int     `json:"highCount"`
	MediumCount int     `json:"mediumCount"`
	MaxNKL      float64 `json:"maxNkl"`
}

// CITrialEntry represents a single comparison in CI output.
type CITrialEntry struct {
	Type  string   `json:"type"`
	Name  string   `json:"name"`
	KL    *float64 `json:"kl,omitempty"`
	NKL   *float64 `json:"nkl,omitempty"`
	Level string   `json:"level,omitempty"`
	Error string   `json:"error,omitempty"`
}

// Write outputs the trial report as NDJSON.
func (w *CITrialWriter) Write(report *TrialReport, options OutputOptions) error {
	out := outputWriter(options)
	trials := visibleTrials(report.Trials, options.Top)

	// Classify and count divergence levels
	summary := CISummary{Type: "summary", TotalTrials: len(trials)}
	for _, t := range trials {
		if !t.OK() {
			summary.Failed++
			continue
		}
		switch config.DivergenceLevel(trialLevel(t, options)) {
		case config.DivergenceLevelHigh:
			summary.HighCount++
		case config.DivergenceLevelMedium:
			summary.MediumCount++
		}
		if t.Comparison.NKL > summary.MaxNKL {
			summary.MaxNKL = t.Comparison.NKL
		}
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	// Write trial entries
	for _, t := range trials {
		entry := CITrialEntry{Type: "trial", Name: t.Name}
		if t.OK() {
			kl, nkl := t.Comparison.KL, t.Comparison.NKL
			entry.KL = &kl
			entry.NKL = &nkl
			entry.Level = trialLevel(t, options)
		} else {
			entry.Error = t.Err.Error()
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

// CIBoundWriter writes bound check reports as a single NDJSON line.
type CIBoundWriter struct{}

// CIBoundEntry is the CI representation of a bound check.
type CIBoundEntry struct {
	Type       string  `json:"type"`
	Holds      bool    `json:"holds"`
	Trials     int     `json:"trials"`
	Violations int     `json:"violations"`
	Errors     int     `json:"errors"`
	MaxNKL     float64 `json:"maxNkl"`
}

// Write outputs the bound check as NDJSON.
func (w *CIBoundWriter) Write(report *BoundReport, options OutputOptions) error {
	r := report.Result
	return writeNDJSONLine(outputWriter(options), CIBoundEntry{
		Type:       "bound",
		Holds:      r.Holds(),
		Trials:     r.Trials,
		Violations: r.Violations,
		Errors:     r.Errors,
		MaxNKL:     r.MaxNKL,
	})
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
