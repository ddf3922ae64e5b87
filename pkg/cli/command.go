package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:    "opener",
		Usage:   "Open folders in external tools",
		Version: "0.1.0",
		Description: `opener runs preset or configured commands against a folder.

Custom actions are read from .opener.yml, .opener.yaml or .opener.toml in the
target folder, or from ~/.config/opener/config.yml. Use --config to point at a
specific file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Only log warnings and errors",
				Value: false,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"C"},
				Usage:   "Path to config file (YAML or TOML)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			NewRunCommand(),
			NewListCommand(),
			NewConfigCommand(),
		},
	}
}
