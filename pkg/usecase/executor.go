package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/opener/pkg/domain/interfaces"
	"github.com/m-mizutani/opener/pkg/domain/model"
)

// DefaultShell is the interpreter command lines are run with
const DefaultShell = "/bin/sh"

type commandExecutor struct {
	shell string
	env   []string
}

// ExecutorOption configures a command executor
type ExecutorOption func(*commandExecutor)

// WithShell overrides the interpreter. An empty path keeps the default.
func WithShell(path string) ExecutorOption {
	return func(e *commandExecutor) {
		if path != "" {
			e.shell = path
		}
	}
}

// WithEnv adds KEY=VALUE entries to the environment of every command
func WithEnv(env ...string) ExecutorOption {
	return func(e *commandExecutor) {
		e.env = append(e.env, env...)
	}
}

// NewCommandExecutor creates a new CommandExecutor instance
func NewCommandExecutor(opts ...ExecutorOption) interfaces.CommandExecutor {
	e := &commandExecutor{shell: DefaultShell}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the request's command line in its working directory
func (c *commandExecutor) Execute(ctx context.Context, req model.ExecutionRequest) *model.ExecutionResult {
	logger := ctxlog.From(ctx)

	commandLine := BuildCommandLine(req.Command, req.Args)
	cwd := expandPath(req.Cwd)
	result := &model.ExecutionResult{
		CommandLine: commandLine,
		Cwd:         cwd,
	}

	logger.Debug("Executing command",
		slog.String("label", req.Label),
		slog.String("command_line", commandLine),
		slog.String("cwd", cwd),
		slog.String("shell", c.shell),
	)

	if err := c.run(ctx, commandLine, cwd, c.prepareEnv(req, cwd)); err != nil {
		result.Error = err.Error()
		logger.Error("Failed to execute",
			slog.String("command_line", commandLine),
			slog.String("cwd", cwd),
			slog.String("error", result.Error),
		)
		return result
	}

	result.Success = true
	logger.Info("Successfully executed",
		slog.String("command_line", commandLine),
		slog.String("cwd", cwd),
	)
	return result
}

// prepareEnv prepares environment variables for command execution
func (c *commandExecutor) prepareEnv(req model.ExecutionRequest, cwd string) []string {
	env := os.Environ()

	openerEnv := map[string]string{
		"OPENER_FOLDER":      cwd,
		"OPENER_FOLDER_NAME": req.FolderName,
		"OPENER_LABEL":       req.Label,
	}
	for key, value := range openerEnv {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return append(env, c.env...)
}

// run spawns the interpreter once. The process is not bound to
// ctx: it runs to completion or until the OS terminates it.
func (c *commandExecutor) run(ctx context.Context, commandLine, cwd string, env []string) error {
	logger := ctxlog.From(ctx)

	cmd := exec.Command(c.shell, "-c", commandLine) // #nosec G204 - command line is from config file
	cmd.Dir = cwd
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.Len() > 0 {
		logger.Debug("Command stdout",
			slog.String("command_line", commandLine),
			slog.String("stdout", stdout.String()),
		)
	}
	if stderr.Len() > 0 {
		logger.Debug("Command stderr",
			slog.String("command_line", commandLine),
			slog.String("stderr", stderr.String()),
		)
	}

	if err != nil {
		errMsg := fmt.Sprintf("command failed: %v", err)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			errMsg += fmt.Sprintf(", stderr: %s", msg)
		}
		return goerr.New(errMsg)
	}

	return nil
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
