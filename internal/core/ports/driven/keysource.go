package driven

import (
	"context"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// KeySource supplies the ordered sort keys for one invocation.
// This is the user's side of the sort: a dialog, flags or configuration.
type KeySource interface {
	// RequestKeys blocks until keys are chosen.
	// An empty, non-nil slice means "no keys" and is not a cancellation.
	// Returns domain.ErrCancelled if the user cancelled.
	RequestKeys(ctx context.Context, prompt domain.KeyPrompt) ([]domain.SortKey, error)
}
