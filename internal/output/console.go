package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

var (
	colorTitle = color.New(color.FgGreen)
	colorError = color.New(color.FgRed)
)

// ConsoleTrialWriter writes trial reports to the console.
type ConsoleTrialWriter struct{}

// Write outputs the trial report as a table.
func (w *ConsoleTrialWriter) Write(report *TrialReport, options OutputOptions) error {
	out := outputWriter(options)
	trials := visibleTrials(report.Trials, options.Top)

	colorTitle.Fprintln(out, "Normalized Kullback-Leibler Results")
	if report.Seed != nil {
		fmt.Fprintf(out, "Seed: %d\n", *report.Seed)
	}
	fmt.Fprintf(out, "Total comparisons: %d\n\n", len(report.Trials))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	// Write header
	if options.Explain {
		fmt.Fprintln(tw, "#\tName\tLength\tv1\tv2\tKL(v1|v2)\tNKL(v1|v2)\tLevel\tQuantum\tFloor\tm")
	} else {
		fmt.Fprintln(tw, "#\tName\tLength\tv1\tv2\tKL(v1|v2)\tNKL(v1|v2)\tLevel")
	}

	// Write rows
	for i, t := range trials {
		if !t.OK() {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
				i+1, t.Name, len(t.V1), t.V1, t.V2, colorError.Sprintf("error: %v", t.Err))
			continue
		}

		c := t.Comparison
		level := trialLevel(t, options)
		levelColor := getLevelColor(level)
		if options.Explain {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%.6f\t%.6f\t%s\t%s\t%.6g\t%s\n",
				i+1, t.Name, len(t.V1), t.V1, t.V2, c.KL, c.NKL, levelColor(level),
				formatFloat(c.Quantum), c.Floor, c.Reference)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%.6f\t%.6f\t%s\n",
				i+1, t.Name, len(t.V1), t.V1, t.V2, c.KL, c.NKL, levelColor(level))
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if options.Explain {
		fmt.Fprintln(out, "\nQuantum: common total after rescaling, Floor: mass of every m entry but one, m: maximally divergent distribution")
	}

	return nil
}

// ConsoleBoundWriter writes bound check reports to the console.
type ConsoleBoundWriter struct{}

// Write outputs the bound check summary.
func (w *ConsoleBoundWriter) Write(report *BoundReport, options OutputOptions) error {
	out := outputWriter(options)
	r := report.Result

	colorTitle.Fprintln(out, "Normalized Divergence Bound Check")
	fmt.Fprintf(out, "Seed: %d\n", r.Seed)
	fmt.Fprintf(out, "Trials: %d (tolerance %g)\n", r.Trials, report.Tolerance)
	fmt.Fprintf(out, "Observed NKL range: [%.6f, %.6f]\n", r.MinNKL, r.MaxNKL)
	fmt.Fprintf(out, "Degenerate normalizations: %d\n", r.Degenerate)
	fmt.Fprintf(out, "Violations: %d, Errors: %d\n\n", r.Violations, r.Errors)

	if r.Holds() {
		color.New(color.FgGreen).Fprintln(out, "NKL stayed within [0,1] for every trial.")
		return nil
	}

	colorError.Fprintln(out, "NKL left [0,1] or failed to compute.")
	if ce := r.Counterexample; ce != nil {
		fmt.Fprintf(out, "First counterexample (%s):\n", ce.Name)
		fmt.Fprintf(out, "  v1 = %s\n  v2 = %s\n", ce.V1, ce.V2)
		if ce.OK() {
			fmt.Fprintf(out, "  NKL(v1|v2) = %g\n", ce.Comparison.NKL)
		} else {
			fmt.Fprintf(out, "  error: %v\n", ce.Err)
		}
	}
	return nil
}

// Helper functions

func getLevelColor(level string) func(string, ...interface{}) string {
	switch level {
	case "high":
		return color.RedString
	case "medium":
		return color.YellowString
	default:
		return color.GreenString
	}
}
