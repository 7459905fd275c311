package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/klmax-go/internal/demo"
	"github.com/masmgr/klmax-go/internal/divergence"
	"github.com/masmgr/klmax-go/internal/output"
)

// CompareCmd returns the compare command.
func CompareCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:     "v1",
			Usage:    "Observed multiplicities, e.g. 5,4,3,2,1",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "v2",
			Usage:    "Reference multiplicities over the same events",
			Required: true,
		},
	)

	return &cli.Command{
		Name:    "compare",
		Aliases: []string{"cmp"},
		Usage:   "Compute KL(v1|v2) and NKL(v1|v2) for two distributions",
		Flags:   flags,
		Action:  compareAction,
	}
}

func compareAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		v1, err := parseDistributionFlag(c, "v1")
		if err != nil {
			return err
		}
		v2, err := parseDistributionFlag(c, "v2")
		if err != nil {
			return err
		}

		trial := demo.NewTrial("v1|v2", demo.TrialManual, v1, v2)
		logTrials([]demo.Trial{trial})
		if !trial.OK() {
			return fmt.Errorf("failed to compare distributions: %w", trial.Err)
		}

		report := &output.TrialReport{
			GeneratedAt: time.Now(),
			Trials:      []demo.Trial{trial},
		}
		return writeTrialReport(ctx, c, report)
	})
}

// parseDistributionFlag parses a comma separated distribution flag.
func parseDistributionFlag(c *cli.Context, name string) (divergence.Distribution, error) {
	d, err := divergence.Parse(c.String(name))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return d, nil
}
