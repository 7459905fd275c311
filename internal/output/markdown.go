package output

import (
	"fmt"
	"strings"
)

// MarkdownTrialWriter writes trial reports as Markdown.
type MarkdownTrialWriter struct{}

// Write outputs the trial report as Markdown.
func (w *MarkdownTrialWriter) Write(report *TrialReport, options OutputOptions) error {
	out := outputWriter(options)
	trials := visibleTrials(report.Trials, options.Top)

	// Header
	fmt.Fprintln(out, "# Normalized Kullback-Leibler Results")
	fmt.Fprintln(out)
	if report.Seed != nil {
		fmt.Fprintf(out, "**Seed:** %d\n\n", *report.Seed)
	}
	fmt.Fprintf(out, "**Total Comparisons:** %d\n\n", len(report.Trials))

	// Table header
	if options.Explain {
		fmt.Fprintln(out, "| # | Name | v1 | v2 | KL(v1\\|v2) | NKL(v1\\|v2) | Level | Quantum | Floor | m |")
		fmt.Fprintln(out, "|---|------|----|----|------------|-------------|-------|---------|-------|---|")
	} else {
		fmt.Fprintln(out, "| # | Name | v1 | v2 | KL(v1\\|v2) | NKL(v1\\|v2) | Level |")
		fmt.Fprintln(out, "|---|------|----|----|------------|-------------|-------|")
	}

	// Table rows
	for i, t := range trials {
		if !t.OK() {
			fmt.Fprintf(out, "| %d | %s | `%s` | `%s` | - | - | %s |\n",
				i+1, escapeMarkdown(t.Name), t.V1, t.V2, escapeMarkdown("error: "+t.Err.Error()))
			continue
		}

		c := t.Comparison
		level := trialLevel(t, options)
		if options.Explain {
			fmt.Fprintf(out, "| %d | %s | `%s` | `%s` | %.6f | %.6f | %s %s | %s | %.6g | `%s` |\n",
				i+1, escapeMarkdown(t.Name), t.V1, t.V2, c.KL, c.NKL, getLevelEmoji(level), level,
				formatFloat(c.Quantum), c.Floor, c.Reference)
		} else {
			fmt.Fprintf(out, "| %d | %s | `%s` | `%s` | %.6f | %.6f | %s %s |\n",
				i+1, escapeMarkdown(t.Name), t.V1, t.V2, c.KL, c.NKL, getLevelEmoji(level), level)
		}
	}

	if options.Explain {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "*m is the distribution with the total of v1 that diverges the most from it.*")
	}

	return nil
}

func getLevelEmoji(level string) string {
	switch level {
	case "high":
		return "\U0001F534" // red circle
	case "medium":
		return "\U0001F7E1" // yellow circle
	default:
		return "\U0001F7E2" // green circle
	}
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
