package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

// ConfigCmd returns the config command.
func ConfigCmd() *cli.Command {
	return &cli.Command{
		Name:   "config",
		Usage:  "Print the effective configuration as JSON",
		Action: configAction,
	}
}

func configAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		data, err := json.MarshalIndent(ctx.Config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = fmt.Fprintf(ctx.Out, "%s\n", data)
		return err
	})
}
