package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/opener/pkg/domain/interfaces"
	"github.com/m-mizutani/opener/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Config struct {
	ConfigPath string
	Folder     string
	Copy       bool
	Desktop    bool
}

func NewConfig() *Config {
	return &Config{
		Folder: ".",
	}
}

// ResolveFolder returns the absolute target folder
func (c *Config) ResolveFolder() (string, error) {
	folder := c.Folder
	if folder == "" {
		folder = "."
	}
	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve folder", goerr.V("folder", folder))
	}
	return abs, nil
}

// LoadModelConfig loads the explicit config file if set, then a config file
// in the target folder, then the user default.
func (c *Config) LoadModelConfig(ctx context.Context, svc interfaces.ConfigService) (*model.Config, error) {
	logger := ctxlog.From(ctx)

	if c.ConfigPath != "" {
		logger.Debug("Loading config", slog.String("path", c.ConfigPath))
		return svc.Load(c.ConfigPath)
	}

	folder, err := c.ResolveFolder()
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(folder); err == nil && info.IsDir() {
		config, path, err := svc.LoadFromDirectory(folder)
		if err != nil {
			return nil, err
		}
		if path != "" {
			logger.Debug("Loaded config from folder", slog.String("path", path))
			return config, nil
		}
	}

	logger.Debug("Loading default config", slog.String("path", svc.GetDefaultPath()))
	return svc.LoadDefault()
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "copy",
			Usage: "Copy the executed command line to the clipboard",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "desktop",
			Usage: "Report failures with a desktop notification",
			Value: false,
		},
	}
}

func newConfigFromCommand(cmd *cli.Command, folderArgIndex int) *Config {
	config := NewConfig()
	config.ConfigPath = cmd.String("config")
	config.Copy = cmd.Bool("copy")
	config.Desktop = cmd.Bool("desktop")
	if folder := cmd.Args().Get(folderArgIndex); folder != "" {
		config.Folder = folder
	}
	return config
}
