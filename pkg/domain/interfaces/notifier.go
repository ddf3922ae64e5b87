package interfaces

import (
	"context"

	"github.com/m-mizutani/opener/pkg/domain/model"
)

// Notifier surfaces execution failures to the user
type Notifier interface {
	NotifyFailure(ctx context.Context, label string, result *model.ExecutionResult) error
}
