package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/klmax-go/internal/output"
)

func writeTrialReport(ctx *CommandContext, c *cli.Context, report *output.TrialReport) error {
	opts := ctx.OutputOptions(c)
	writer := output.NewTrialReportWriter(opts.Format)
	return writer.Write(report, opts)
}

func writeBoundReport(ctx *CommandContext, c *cli.Context, report *output.BoundReport) error {
	opts := ctx.OutputOptions(c)
	writer := output.NewBoundReportWriter(opts.Format)
	return writer.Write(report, opts)
}
