package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driving"
	"github.com/shawnhcorey/Field-Sort/internal/logger"
)

// Ensure SortService implements the interface.
var _ driving.SortService = (*SortService)(nil)

// DefaultPreviewLines is how many lines the key dialog previews.
const DefaultPreviewLines = 8

// SortService runs the field sort pipeline.
type SortService struct {
	locales      driven.LocaleProvider
	keySource    driven.KeySource
	defaults     []domain.SortKey
	previewLines int
}

// Option configures a SortService.
type Option func(*SortService)

// WithKeySource sets where keys come from when a request has none.
func WithKeySource(source driven.KeySource) Option {
	return func(s *SortService) {
		s.keySource = source
	}
}

// WithDefaultKeys sets the keys preselected in the key prompt.
func WithDefaultKeys(keys []domain.SortKey) Option {
	return func(s *SortService) {
		s.defaults = keys
	}
}

// WithPreviewLines sets how many lines the key prompt previews.
func WithPreviewLines(n int) Option {
	return func(s *SortService) {
		if n > 0 {
			s.previewLines = n
		}
	}
}

// NewSortService creates a sort service.
// The locale provider is required for keys that name a locale.
func NewSortService(locales driven.LocaleProvider, opts ...Option) *SortService {
	s := &SortService{
		locales:      locales,
		previewLines: DefaultPreviewLines,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sort segments, extracts, obtains keys, sorts and reassembles.
func (s *SortService) Sort(ctx context.Context, req domain.SortRequest) (*domain.SortResult, error) {
	logger.Section("Field Sort")

	layout, _ := Segment(req.Marked)
	extraction := Extract(req.Plain, req.Marked)
	logger.Debug("Layout: frontage=%q newline=%q ending=%q", layout.Frontage, layout.Newline, layout.Ending)
	logger.Debug("Lines: %d marked, %d plain, %d fields max",
		extraction.MarkedLines, extraction.PlainLines, extraction.Count)

	if extraction.Mismatched() {
		if req.Strict {
			return nil, fmt.Errorf("%w: %d marked, %d plain",
				domain.ErrLineMismatch, extraction.MarkedLines, extraction.PlainLines)
		}
		logger.Warn("Marked text has %d lines but plain text has %d; sorting the first %d",
			extraction.MarkedLines, extraction.PlainLines, len(extraction.Lines))
	}

	keys := req.Keys
	if keys == nil {
		requested, err := s.requestKeys(ctx, extraction)
		if isCancellation(err) {
			logger.Info("Sort cancelled")
			return &domain.SortResult{
				Output:     req.Marked,
				Status:     domain.StatusCancelled,
				FieldCount: extraction.Count,
				LineCount:  len(extraction.Lines),
				Mismatched: extraction.Mismatched(),
			}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("requesting sort keys: %w", err)
		}
		keys = requested
	}

	for i, key := range keys {
		logger.Debug("Key %d: %s", i+1, key)
	}

	keyed, err := s.order(extraction.Lines, keys)
	if err != nil {
		return nil, err
	}

	return &domain.SortResult{
		Output:     Reassemble(layout, keyed),
		Status:     domain.StatusSuccess,
		Keys:       keys,
		FieldCount: extraction.Count,
		LineCount:  len(extraction.Lines),
		Mismatched: extraction.Mismatched(),
	}, nil
}

// Extract splits a selection into lines and fields without sorting.
func (s *SortService) Extract(marked, plain string) *domain.Extraction {
	return Extract(plain, marked)
}

// Preview returns up to limit marked lines in the order the keys give.
func (s *SortService) Preview(
	extraction *domain.Extraction, keys []domain.SortKey, limit int,
) ([]string, error) {
	if extraction == nil {
		return nil, fmt.Errorf("%w: extraction is nil", domain.ErrInvalidInput)
	}

	keyed, err := s.order(extraction.Lines, keys)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(keyed) > limit {
		keyed = keyed[:limit]
	}

	out := make([]string, len(keyed))
	for i := range keyed {
		out[i] = keyed[i].Line.Marked
	}
	return out, nil
}

// Locales returns the selectable locales and the active one.
func (s *SortService) Locales() ([]domain.Locale, domain.Locale) {
	if s.locales == nil {
		return []domain.Locale{domain.LocaleNone}, domain.LocaleNone
	}
	return s.locales.Locales(), s.locales.Active()
}

func (s *SortService) order(lines []domain.Line, keys []domain.SortKey) ([]KeyedLine, error) {
	keyed, err := AssignKeys(lines, keys, s.locales)
	if err != nil {
		return nil, fmt.Errorf("assigning keys: %w", err)
	}
	SortKeyed(keyed)
	return keyed, nil
}

func (s *SortService) requestKeys(ctx context.Context, extraction *domain.Extraction) ([]domain.SortKey, error) {
	if s.keySource == nil {
		return nil, domain.ErrMissingKeySource
	}

	locales, active := s.Locales()
	prompt := domain.KeyPrompt{
		FieldCount: extraction.Count,
		Lines:      extraction.Lines,
		Locales:    locales,
		Active:     active,
		Defaults:   s.defaults,
		Preview: func(keys []domain.SortKey) []string {
			lines, err := s.Preview(extraction, keys, s.previewLines)
			if err != nil {
				logger.Debug("Preview failed: %v", err)
				return nil
			}
			return lines
		},
	}

	keys, err := s.keySource.RequestKeys(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []domain.SortKey{}
	}
	return keys, nil
}

// isCancellation reports whether err ends the sort as a user cancellation.
func isCancellation(err error) bool {
	return errors.Is(err, domain.ErrCancelled) || errors.Is(err, context.Canceled)
}
