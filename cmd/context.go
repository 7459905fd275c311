package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/klmax-go/config"
	"github.com/masmgr/klmax-go/internal/output"
)

// CommandContext holds common state for command execution.
type CommandContext struct {
	Config *config.Config
	Out    io.Writer
}

// NewCommandContext loads the configuration, applies flag overrides and
// validates the result.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(c, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &CommandContext{
		Config: cfg,
		Out:    c.App.Writer,
	}, nil
}

// applyFlagOverrides copies explicitly set flags over configuration values.
func applyFlagOverrides(c *cli.Context, cfg *config.Config) {
	if c.IsSet("trials") {
		cfg.Demo.Trials = c.Int("trials")
		cfg.Bound.Trials = c.Int("trials")
	}
	if c.IsSet("seed") {
		cfg.Demo.Seed = c.Uint64("seed")
	}
	if c.IsSet("min-length") {
		cfg.Demo.MinLength = c.Int("min-length")
	}
	if c.IsSet("max-length") {
		cfg.Demo.MaxLength = c.Int("max-length")
	}
	if c.IsSet("max-value") {
		cfg.Demo.MaxValue = c.Int("max-value")
	}
	if c.IsSet("tolerance") {
		cfg.Bound.Tolerance = c.Float64("tolerance")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("top") {
		cfg.Output.Top = c.Int("top")
	}
}

// executeWithContext builds the command context and runs fn with it.
func executeWithContext(c *cli.Context, fn func(ctx *CommandContext, c *cli.Context) error) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	return fn(ctx, c)
}

// OutputOptions creates OutputOptions from the configuration and CLI flags.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(ctx.Config.Output.Format),
		Top:        ctx.Config.Output.Top,
		Explain:    c.Bool("explain"),
		Writer:     ctx.Out,
		Thresholds: ctx.Config.Thresholds,
	}
}
