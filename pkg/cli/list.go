package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/opener/pkg/domain/model"
	"github.com/m-mizutani/opener/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List actions available for a folder",
		ArgsUsage: "[folder]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "List every registered action regardless of folder",
			},
		},
		Action: listAction,
	}
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	config := newConfigFromCommand(cmd, 0)
	folder, err := config.ResolveFolder()
	if err != nil {
		return err
	}

	modelConfig, err := config.LoadModelConfig(ctx, usecase.NewConfigService())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry := usecase.NewRegistry(ctx, modelConfig, usecase.RegistryOptions{})

	entries := registry.ActionsForFolder(folder)
	if cmd.Bool("all") {
		entries = registry.Entries()
	}

	return printEntries(os.Stdout, entries)
}

func printEntries(w io.Writer, entries []model.RegisteredAction) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No actions available")
		return err
	}

	idColor := color.New(color.FgCyan)
	presetColor := color.New(color.FgYellow)
	for _, entry := range entries {
		kind := presetColor.Sprint("preset")
		if !entry.Preset {
			kind = "folder: " + entry.Action.FolderName
		}
		if _, err := fmt.Fprintf(w, "%s\t%s (%s)\n    %s\n",
			idColor.Sprint(entry.ID),
			entry.Action.Label,
			kind,
			usecase.BuildCommandLine(entry.Action.Command, entry.Action.Args),
		); err != nil {
			return err
		}
	}
	return nil
}
