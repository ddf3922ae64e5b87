package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/opener/pkg/domain/interfaces"
	"github.com/m-mizutani/opener/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func NewRunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run an action against a folder",
		ArgsUsage: "<action-id> [folder]",
		Flags:     runFlags(),
		Action:    RunAction,
	}
}

func RunAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.From(ctx)

	id := cmd.Args().First()
	if id == "" {
		return goerr.New("action id is required, see `opener list`")
	}

	config := newConfigFromCommand(cmd, 1)
	folder, err := config.ResolveFolder()
	if err != nil {
		return err
	}

	modelConfig, err := config.LoadModelConfig(ctx, usecase.NewConfigService())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var notifier interfaces.Notifier
	if config.Desktop {
		notifier = usecase.NewDesktopNotifier()
	} else {
		notifier = usecase.NewConsoleNotifier(os.Stderr)
	}

	registry := usecase.NewRegistry(ctx, modelConfig, usecase.RegistryOptions{
		Executor: usecase.NewCommandExecutor(usecase.WithShell(modelConfig.Shell)),
		Notifier: notifier,
	})

	result, err := registry.Dispatch(ctx, id, folder)
	if err != nil {
		return err
	}

	if config.Copy {
		if err := clipboard.WriteAll(result.CommandLine); err != nil {
			logger.Warn("Failed to copy command line to clipboard",
				slog.String("error", err.Error()),
			)
		}
	}

	if !result.Success {
		return goerr.New("execution failed", goerr.V("id", id))
	}
	return nil
}
