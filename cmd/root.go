package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/klmax-go/config"
	"github.com/masmgr/klmax-go/internal/logging"
	"github.com/masmgr/klmax-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "klmax",
		Usage:   "Normalized Kullback-Leibler divergence between multiplicity distributions",
		Version: "1.0.0",
		Commands: []*cli.Command{
			DemoCmd(),
			CompareCmd(),
			BoundCmd(),
			ConfigCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log diagnostics to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			logging.Init(c.Bool("debug"))
			return nil
		},
		Action: defaultAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of random trials to show (0 shows all)",
		},
		&cli.BoolFlag{
			Name:  "explain",
			Usage: "Show quantum, floor and maximally divergent distribution",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// defaultAction runs the demonstration when no subcommand is given.
func defaultAction(c *cli.Context) error {
	if c.NArg() > 0 {
		return cli.ShowAppHelp(c)
	}
	return demoAction(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
