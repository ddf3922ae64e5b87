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

// NewConfigCommand creates a new config command
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage opener configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Generate configuration template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path for config file",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Force overwrite existing file",
					},
				},
				Action: configInitAction,
			},
			{
				Name:      "check",
				Usage:     "Validate custom actions in the configuration",
				ArgsUsage: "[folder]",
				Action:    configCheckAction,
			},
		},
	}
}

func configInitAction(ctx context.Context, cmd *cli.Command) error {
	service := usecase.NewConfigService()

	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = service.GetDefaultPath()
	}

	force := cmd.Bool("force")

	if err := service.SaveTemplate(outputPath, force); err != nil {
		return fmt.Errorf("failed to create config template: %w", err)
	}

	fmt.Printf("Created config template: %s\n", outputPath)
	return nil
}

func configCheckAction(ctx context.Context, cmd *cli.Command) error {
	config := newConfigFromCommand(cmd, 0)

	modelConfig, err := config.LoadModelConfig(ctx, usecase.NewConfigService())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	invalid := printCheckReport(os.Stdout, modelConfig.CustomFolders)
	if invalid > 0 {
		return fmt.Errorf("%d invalid custom action(s)", invalid)
	}
	return nil
}

// printCheckReport writes one line per record and returns the number of
// rejected records.
func printCheckReport(w io.Writer, records []any) int {
	ok := color.New(color.FgGreen)
	ng := color.New(color.FgRed)

	invalid := 0
	valid := 0
	for i, record := range records {
		action, err := model.ParseAction(record)
		if err != nil {
			invalid++
			fmt.Fprintf(w, "%s [%d] %v\n", ng.Sprint("✗"), i, err)
			continue
		}
		fmt.Fprintf(w, "%s [%d] %s -> %s (%s)\n",
			ok.Sprint("✓"), i, action.Label, model.CustomActionID(valid), action.FolderName)
		valid++
	}
	fmt.Fprintf(w, "%d valid, %d invalid\n", valid, invalid)
	return invalid
}
