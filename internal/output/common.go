package output

import (
	"io"
	"os"
	"strconv"

	"github.com/masmgr/klmax-go/config"
	"github.com/masmgr/klmax-go/internal/demo"
)

const reportDateTimeLayout = "2006-01-02T15:04:05Z07:00"

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

// visibleTrials applies the top limit to random trials only; fixed
// scenarios and manual comparisons are always shown.
func visibleTrials(trials []demo.Trial, top int) []demo.Trial {
	var random, rest []demo.Trial
	for _, t := range trials {
		if t.Kind == demo.TrialRandom {
			random = append(random, t)
		} else {
			rest = append(rest, t)
		}
	}
	return append(limitTop(random, top), rest...)
}

func outputWriter(options OutputOptions) io.Writer {
	if options.Writer == nil {
		return os.Stdout
	}
	return options.Writer
}

func thresholds(options OutputOptions) config.DivergenceThresholds {
	if options.Thresholds == (config.DivergenceThresholds{}) {
		return config.DefaultDivergenceThresholds()
	}
	return options.Thresholds
}

// trialLevel classifies a successful trial; failed trials have no level.
func trialLevel(t demo.Trial, options OutputOptions) string {
	if !t.OK() {
		return ""
	}
	return string(thresholds(options).Classify(t.Comparison.NKL))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
