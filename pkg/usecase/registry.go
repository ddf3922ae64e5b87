package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/opener/pkg/domain"
	"github.com/m-mizutani/opener/pkg/domain/interfaces"
	"github.com/m-mizutani/opener/pkg/domain/model"
)

// Registry maps command identifiers to actions and dispatches them to the
// executor. It is immutable once built.
type Registry struct {
	entries  []model.RegisteredAction
	byID     map[string]model.Action
	executor interfaces.CommandExecutor
	notifier interfaces.Notifier
}

type RegistryOptions struct {
	Executor interfaces.CommandExecutor
	Notifier interfaces.Notifier
}

// NewRegistry registers presets and every valid custom action of cfg
func NewRegistry(ctx context.Context, cfg *model.Config, opts RegistryOptions) *Registry {
	logger := ctxlog.From(ctx)

	if cfg == nil {
		cfg = &model.Config{}
	}

	r := &Registry{
		byID:     make(map[string]model.Action),
		executor: opts.Executor,
		notifier: opts.Notifier,
	}
	if r.executor == nil {
		r.executor = NewCommandExecutor(WithShell(cfg.Shell))
	}
	if r.notifier == nil {
		r.notifier = NewNoOpNotifier()
	}

	if !cfg.DisablePresets {
		presets := model.PresetActions()
		for _, p := range presets {
			r.add(p)
		}
		logger.Debug("Registered preset commands", slog.Int("count", len(presets)))
	}

	custom := LoadCustomActions(ctx, cfg.CustomFolders)
	for i, action := range custom {
		id := model.CustomActionID(i)
		r.add(model.RegisteredAction{ID: id, Action: action})
		logger.Debug("Registered custom command",
			slog.String("id", id),
			slog.String("folder_name", action.FolderName),
		)
	}
	logger.Info(fmt.Sprintf("Registered %d custom command(s)", len(custom)))

	return r
}

func (r *Registry) add(entry model.RegisteredAction) {
	r.entries = append(r.entries, entry)
	r.byID[entry.ID] = entry.Action
}

// LoadCustomActions validates raw configuration records. Rejected records are
// logged and skipped; they never stop the remaining records from loading.
func LoadCustomActions(ctx context.Context, records []any) []model.Action {
	logger := ctxlog.From(ctx)

	var actions []model.Action
	for i, record := range records {
		action, err := model.ParseAction(record)
		if err != nil {
			logger.Warn(fmt.Sprintf("Invalid custom action at index %d", i),
				slog.String("record", renderRecord(record)),
				slog.String("reason", err.Error()),
			)
			continue
		}
		actions = append(actions, *action)
	}

	logger.Info(fmt.Sprintf("Loaded %d valid custom action(s) from configuration", len(actions)))
	return actions
}

func renderRecord(record any) string {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Sprintf("%v", record)
	}
	return string(raw)
}

// Lookup returns the action registered under id
func (r *Registry) Lookup(id string) (model.Action, bool) {
	action, ok := r.byID[id]
	return action, ok
}

// Entries returns presets first, then custom actions in index order
func (r *Registry) Entries() []model.RegisteredAction {
	return append([]model.RegisteredAction{}, r.entries...)
}

// ActionsForFolder returns the presets plus the custom actions bound to the
// base name of folder.
func (r *Registry) ActionsForFolder(folder string) []model.RegisteredAction {
	name := filepath.Base(filepath.Clean(folder))

	var matched []model.RegisteredAction
	for _, entry := range r.entries {
		if entry.Preset || entry.Action.FolderName == name {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Dispatch runs the action registered under id against folder. Execution
// failures are reported to the notifier and returned in the result; an error
// is returned only when the request cannot be built.
func (r *Registry) Dispatch(ctx context.Context, id, folder string) (*model.ExecutionResult, error) {
	logger := ctxlog.From(ctx)

	action, ok := r.Lookup(id)
	if !ok {
		return nil, goerr.Wrap(domain.ErrUnknownAction, "no action registered", goerr.V("id", id))
	}

	cwd, err := filepath.Abs(expandPath(folder))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve folder path", goerr.V("folder", folder))
	}

	result := r.executor.Execute(ctx, model.NewExecutionRequest(action, cwd))
	if !result.Success {
		if err := r.notifier.NotifyFailure(ctx, action.Label, result); err != nil {
			logger.Warn("Failed to notify execution failure",
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
		}
	}

	return result, nil
}
