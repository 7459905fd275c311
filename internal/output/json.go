package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONTrialWriter writes trial reports as JSON.
type JSONTrialWriter struct{}

// JSONTrialReport is the JSON output structure for trial reports.
type JSONTrialReport struct {
	Seed        *uint64         `json:"seed,omitempty"`
	GeneratedAt string          `json:"generatedAt"`
	TotalTrials int             `json:"totalTrials"`
	Items       []JSONTrialItem `json:"items"`
}

// JSONTrialItem is the JSON output structure for a single comparison.
type JSONTrialItem struct {
	Name          string             `json:"name"`
	Kind          string             `json:"kind"`
	V1            []float64          `json:"v1"`
	V2            []float64          `json:"v2"`
	MaxValue      int                `json:"maxValue,omitempty"`
	KL            *float64           `json:"kl,omitempty"`
	NKL           *float64           `json:"nkl,omitempty"`
	Level         string             `json:"level,omitempty"`
	Degenerate    bool               `json:"degenerate,omitempty"`
	Error         string             `json:"error,omitempty"`
	Normalization *JSONNormalization `json:"normalization,omitempty"`
}

// JSONNormalization holds the common-quantum view of a comparison.
type JSONNormalization struct {
	Quantum   float64   `json:"quantum"`
	Floor     float64   `json:"floor"`
	Rescaled  bool      `json:"rescaled"`
	V1        []float64 `json:"v1"`
	V2        []float64 `json:"v2"`
	Reference []float64 `json:"reference"`
}

// Write outputs the trial report as JSON.
func (w *JSONTrialWriter) Write(report *TrialReport, options OutputOptions) error {
	trials := visibleTrials(report.Trials, options.Top)

	items := make([]JSONTrialItem, len(trials))
	for i, t := range trials {
		item := JSONTrialItem{
			Name:     t.Name,
			Kind:     string(t.Kind),
			V1:       t.V1,
			V2:       t.V2,
			MaxValue: t.MaxValue,
		}
		if !t.OK() {
			item.Error = t.Err.Error()
			items[i] = item
			continue
		}

		c := t.Comparison
		kl, nkl := c.KL, c.NKL
		item.KL = &kl
		item.NKL = &nkl
		item.Level = trialLevel(t, options)
		item.Degenerate = c.Degenerate
		if options.Explain {
			item.Normalization = &JSONNormalization{
				Quantum:   c.Quantum,
				Floor:     c.Floor,
				Rescaled:  c.Rescaled,
				V1:        c.V1,
				V2:        c.V2,
				Reference: c.Reference,
			}
		}
		items[i] = item
	}

	jsonReport := JSONTrialReport{
		Seed:        report.Seed,
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
		TotalTrials: len(report.Trials),
		Items:       items,
	}

	return writeJSON(jsonReport, outputWriter(options))
}

// JSONBoundWriter writes bound check reports as JSON.
type JSONBoundWriter struct{}

// JSONBoundReport is the JSON output structure for a bound check.
type JSONBoundReport struct {
	Seed           uint64         `json:"seed"`
	GeneratedAt    string         `json:"generatedAt"`
	Trials         int            `json:"trials"`
	Tolerance      float64        `json:"tolerance"`
	Holds          bool           `json:"holds"`
	Violations     int            `json:"violations"`
	Errors         int            `json:"errors"`
	Degenerate     int            `json:"degenerate"`
	MinNKL         float64        `json:"minNkl"`
	MaxNKL         float64        `json:"maxNkl"`
	Counterexample *JSONTrialItem `json:"counterexample,omitempty"`
}

// Write outputs the bound check report as JSON.
func (w *JSONBoundWriter) Write(report *BoundReport, options OutputOptions) error {
	r := report.Result
	jsonReport := JSONBoundReport{
		Seed:        r.Seed,
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
		Trials:      r.Trials,
		Tolerance:   report.Tolerance,
		Holds:       r.Holds(),
		Violations:  r.Violations,
		Errors:      r.Errors,
		Degenerate:  r.Degenerate,
		MinNKL:      r.MinNKL,
		MaxNKL:      r.MaxNKL,
	}

	if ce := r.Counterexample; ce != nil {
		item := JSONTrialItem{Name: ce.Name, Kind: string(ce.Kind), V1: ce.V1, V2: ce.V2, MaxValue: ce.MaxValue}
		if ce.OK() {
			nkl := ce.Comparison.NKL
			item.NKL = &nkl
		} else {
			item.Error = ce.Err.Error()
		}
		jsonReport.Counterexample = &item
	}

	return writeJSON(jsonReport, outputWriter(options))
}

func writeJSON(data interface{}, out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
