package cmd

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/klmax-go/internal/demo"
	"github.com/masmgr/klmax-go/internal/output"
)

// DemoCmd returns the demo command.
func DemoCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:  "trials",
			Usage: "Number of random distribution pairs",
			Value: 10,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "Random seed (0 derives one from the clock)",
		},
		&cli.IntFlag{
			Name:  "min-length",
			Usage: "Minimum number of events per distribution",
			Value: 2,
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
		&cli.BoolFlag{
			Name:  "no-random",
			Usage: "Skip the random trials",
		},
		&cli.BoolFlag{
			Name:  "no-scenarios",
			Usage: "Skip the fixed scenarios",
		},
	)

	return &cli.Command{
		Name:    "demo",
		Aliases: []string{"d"},
		Usage:   "Compare random distributions and the fixed scenarios",
		Flags:   flags,
		Action:  demoAction,
	}
}

func demoAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		opts := demo.RunOptions{
			SkipRandom:    c.Bool("no-random"),
			SkipScenarios: c.Bool("no-scenarios"),
		}

		log.Debug().
			Int("trials", ctx.Config.Demo.Trials).
			Uint64("seed", ctx.Config.Demo.Seed).
			Bool("skipRandom", opts.SkipRandom).
			Bool("skipScenarios", opts.SkipScenarios).
			Msg("running demonstration")

		result := demo.Run(ctx.Config.Demo, opts)
		logTrials(result.Trials)

		report := &output.TrialReport{
			GeneratedAt: time.Now(),
			Trials:      result.Trials,
		}
		if !opts.SkipRandom {
			seed := result.Seed
			report.Seed = &seed
		}

		return writeTrialReport(ctx, c, report)
	})
}

func logTrials(trials []demo.Trial) {
	for _, t := range trials {
		if !t.OK() {
			log.Warn().Str("trial", t.Name).Err(t.Err).Msg("comparison failed")
			continue
		}
		log.Debug().
			Str("trial", t.Name).
			Float64("quantum", t.Comparison.Quantum).
			Float64("floor", t.Comparison.Floor).
			Bool("rescaled", t.Comparison.Rescaled).
			Bool("degenerate", t.Comparison.Degenerate).
			Msg("normalized")
	}
}
