package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/klmax-go/internal/demo"
	"github.com/masmgr/klmax-go/internal/output"
)

// BoundCmd returns the bound command.
func BoundCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:  "trials",
			Usage: "Number of random distribution pairs to check",
			Value: 10000,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "Random seed (0 derives one from the clock)",
		},
		&cli.IntFlag{
			Name:  "max-length",
			Usage: "Maximum number of events per distribution",
			Value: 10,
		},
		&cli.IntFlag{
			Name:  "max-value",
			Usage: "Upper bound of the per-pair maximum multiplicity",
			Value: 10,
		},
		&cli.Float64Flag{
			Name:  "tolerance",
			Usage: "Allowed floating-point excess outside [0,1]",
			Value: 1e-9,
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Exit with an error when the bound does not hold",
		},
	)

	return &cli.Command{
		Name:   "bound",
		Usage:  "Check that normalized divergences of random pairs stay within [0,1]",
		Flags:  flags,
		Action: boundAction,
	}
}

func boundAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		log.Debug().
			Int("trials", ctx.Config.Bound.Trials).
			Float64("tolerance", ctx.Config.Bound.Tolerance).
			Msg("checking normalized divergence bound")

		result := demo.CheckBound(ctx.Config.Demo, ctx.Config.Bound)

		report := &output.BoundReport{
			GeneratedAt: time.Now(),
			Tolerance:   ctx.Config.Bound.Tolerance,
			Result:      result,
		}
		if err := writeBoundReport(ctx, c, report); err != nil {
			return err
		}

		if c.Bool("strict") && !result.Holds() {
			return fmt.Errorf("bound violated in %d of %d trials (%d errors)",
				result.Violations, result.Trials, result.Errors)
		}
		return nil
	})
}
