package driving

import (
	"context"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// SortService reorders selections by their fields.
type SortService interface {
	// Sort runs the full pipeline for one selection.
	// A cancelled sort is reported through SortResult.Status, not an error.
	Sort(ctx context.Context, req domain.SortRequest) (*domain.SortResult, error)

	// Extract splits a selection into lines and fields without sorting.
	Extract(marked, plain string) *domain.Extraction

	// Preview returns up to limit marked lines in sorted order.
	// A limit of zero or less returns every line.
	Preview(extraction *domain.Extraction, keys []domain.SortKey, limit int) ([]string, error)

	// Locales returns the selectable locales and the active one.
	Locales() ([]domain.Locale, domain.Locale)
}
