package interfaces

import (
	"context"

	"github.com/m-mizutani/opener/pkg/domain/model"
)

// CommandExecutor runs one execution request. Failures are reported in the
// returned result, never as an error.
type CommandExecutor interface {
	Execute(ctx context.Context, req model.ExecutionRequest) *model.ExecutionResult
}
