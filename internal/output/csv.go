package output

import (
	"encoding/csv"
	"fmt"
)

// CSVTrialWriter writes trial reports as CSV.
type CSVTrialWriter struct{}

// Write outputs the trial report as CSV.
func (w *CSVTrialWriter) Write(report *TrialReport, options OutputOptions) error {
	trials := visibleTrials(report.Trials, options.Top)
	writer := csv.NewWriter(outputWriter(options))

	// Write header
	headers := []string{"Name", "Kind", "Length", "V1", "V2", "KL", "NKL", "Level", "Error"}
	if options.Explain {
		headers = append(headers, "Quantum", "Floor", "Rescaled", "Reference")
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	// Write data
	for _, t := range trials {
		row := []string{
			t.Name,
			string(t.Kind),
			fmt.Sprintf("%d", len(t.V1)),
			t.V1.String(),
			t.V2.String(),
		}
		if t.OK() {
			row = append(row,
				fmt.Sprintf("%.12f", t.Comparison.KL),
				fmt.Sprintf("%.12f", t.Comparison.NKL),
				trialLevel(t, options),
				"",
			)
		} else {
			row = append(row, "", "", "", t.Err.Error())
		}

		if options.Explain {
			if t.OK() {
				c := t.Comparison
				row = append(row,
					formatFloat(c.Quantum),
					fmt.Sprintf("%.12g", c.Floor),
					fmt.Sprintf("%t", c.Rescaled),
					c.Reference.String(),
				)
			} else {
				row = append(row, "", "", "", "")
			}
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
