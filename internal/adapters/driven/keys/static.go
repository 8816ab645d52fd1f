// Package keys provides non-interactive sort key sources.
package keys

import (
	"context"
	"slices"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
)

// Ensure the sources implement the KeySource interface.
var (
	_ driven.KeySource = (*Static)(nil)
	_ driven.KeySource = (*Cancelled)(nil)
)

// Static returns the same keys every time.
// Used for --key flags and configured default keys.
type Static struct {
	keys []domain.SortKey
}

// NewStatic creates a source for keys. Nil keys are treated as none.
func NewStatic(keys []domain.SortKey) *Static {
	if keys == nil {
		keys = []domain.SortKey{}
	}
	return &Static{keys: keys}
}

// RequestKeys returns a copy of the fixed keys.
func (s *Static) RequestKeys(ctx context.Context, _ domain.KeyPrompt) ([]domain.SortKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.keys), nil
}

// Cancelled always cancels. Used when a dialog was required but no
// terminal is available to show it.
type Cancelled struct{}

// NewCancelled creates a source that always cancels.
func NewCancelled() *Cancelled {
	return &Cancelled{}
}

// RequestKeys returns domain.ErrCancelled.
func (c *Cancelled) RequestKeys(_ context.Context, _ domain.KeyPrompt) ([]domain.SortKey, error) {
	return nil, domain.ErrCancelled
}
