package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/opener/pkg/domain/interfaces"
	"github.com/m-mizutani/opener/pkg/domain/model"
)

type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier writes failure notifications to w
func NewConsoleNotifier(w io.Writer) interfaces.Notifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) NotifyFailure(ctx context.Context, label string, result *model.ExecutionResult) error {
	header := color.New(color.FgRed, color.Bold)
	if _, err := header.Fprintf(n.w, "❌ Failed to execute: %s\n", label); err != nil {
		return goerr.Wrap(err, "failed to write notification")
	}
	if _, err := fmt.Fprintf(n.w, "Command: %s\n", color.New(color.FgCyan).Sprint(result.CommandLine)); err != nil {
		return goerr.Wrap(err, "failed to write notification")
	}
	if _, err := fmt.Fprintf(n.w, "Error: %s\n", result.Error); err != nil {
		return goerr.Wrap(err, "failed to write notification")
	}
	return nil
}

type DesktopNotifier struct{}

// NewDesktopNotifier sends failure notifications through the OS notification center
func NewDesktopNotifier() interfaces.Notifier {
	return &DesktopNotifier{}
}

func (n *DesktopNotifier) NotifyFailure(ctx context.Context, label string, result *model.ExecutionResult) error {
	logger := ctxlog.From(ctx)

	title := "opener: " + label
	message := fmt.Sprintf("Command: %s\nError: %s", result.CommandLine, result.Error)

	switch runtime.GOOS {
	case "darwin":
		return n.notifyMacOS(ctx, title, message)
	case "linux":
		return n.notifyLinux(ctx, title, message)
	default:
		logger.Warn("notifications not supported on this OS",
			slog.String("os", runtime.GOOS),
		)
		return nil
	}
}

func (n *DesktopNotifier) notifyMacOS(ctx context.Context, title, message string) error {
	logger := ctxlog.From(ctx)

	script := fmt.Sprintf(`display notification "%s" with title "%s" sound name "Basso"`,
		escapeAppleScript(message), escapeAppleScript(title))

	cmd := exec.Command("osascript", "-e", script) // #nosec G204 - script is built from config data
	if err := cmd.Run(); err != nil {
		logger.Warn("notification failed on macOS",
			slog.String("command", "osascript"),
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return goerr.Wrap(err, "failed to send notification on macOS")
	}
	return nil
}

func (n *DesktopNotifier) notifyLinux(ctx context.Context, title, message string) error {
	logger := ctxlog.From(ctx)

	cmd := exec.Command("notify-send", "--urgency=critical", title, message) // #nosec G204 - arguments are passed without a shell
	if err := cmd.Run(); err != nil {
		logger.Warn("notification failed on Linux",
			slog.String("command", "notify-send"),
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return goerr.Wrap(err, "failed to send notification on Linux (notify-send not available or failed)")
	}
	return nil
}

// escapeAppleScript escapes special characters for AppleScript
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

type NoOpNotifier struct{}

func NewNoOpNotifier() interfaces.Notifier {
	return &NoOpNotifier{}
}

func (n *NoOpNotifier) NotifyFailure(ctx context.Context, label string, result *model.ExecutionResult) error {
	return nil
}
