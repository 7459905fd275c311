package output

import (
	"io"
	"time"

	"github.com/masmgr/klmax-go/config"
	"github.com/masmgr/klmax-go/internal/demo"
)

// Compile-time interface conformance checks.
var (
	// TrialReportWriter implementations
	_ TrialReportWriter = (*ConsoleTrialWriter)(nil)
	_ TrialReportWriter = (*JSONTrialWriter)(nil)
	_ TrialReportWriter = (*CSVTrialWriter)(nil)
	_ TrialReportWriter = (*MarkdownTrialWriter)(nil)
	_ TrialReportWriter = (*CITrialWriter)(nil)

	// BoundReportWriter implementations
	_ BoundReportWriter = (*ConsoleBoundWriter)(nil)
	_ BoundReportWriter = (*JSONBoundWriter)(nil)
	_ BoundReportWriter = (*CIBoundWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int       // maximum number of random trials shown, 0 for all
	Explain    bool      // show quantum, floor and reference distribution
	Writer     io.Writer // defaults to stdout
	Thresholds config.DivergenceThresholds
}

// TrialReport holds the comparisons of a demo or compare run.
type TrialReport struct {
	Seed        *uint64 // set when random trials were drawn
	GeneratedAt time.Time
	Trials      []demo.Trial
}

// BoundReport holds the result of a bound check.
type BoundReport struct {
	GeneratedAt time.Time
	Tolerance   float64
	Result      demo.BoundReport
}

// TrialReportWriter writes trial reports.
type TrialReportWriter interface {
	Write(report *TrialReport, options OutputOptions) error
}

// BoundReportWriter writes bound check reports.
type BoundReportWriter interface {
	Write(report *BoundReport, options OutputOptions) error
}

// NewTrialReportWriter creates a report writer for the specified format.
func NewTrialReportWriter(format OutputFormat) TrialReportWriter {
	switch format {
	case FormatJSON:
		return &JSONTrialWriter{}
	case FormatCSV:
		return &CSVTrialWriter{}
	case FormatMarkdown:
		return &MarkdownTrialWriter{}
	case FormatCI:
		return &CITrialWriter{}
	default:
		return &ConsoleTrialWriter{}
	}
}

// NewBoundReportWriter creates a bound report writer for the specified format.
// Tabular formats fall back to the console.
func NewBoundReportWriter(format OutputFormat) BoundReportWriter {
	switch format {
	case FormatJSON:
		return &JSONBoundWriter{}
	case FormatCI:
		return &CIBoundWriter{}
	default:
		return &ConsoleBoundWriter{}
	}
}
