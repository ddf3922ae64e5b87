package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logger := newLogger(os.Stderr, cmd.Bool("debug"), cmd.Bool("quiet"))
	return ctxlog.With(ctx, logger), nil
}

func newLogger(w io.Writer, debug, quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	} else if quiet {
		logLevel = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
