package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
)

// foldCollation compares case-insensitively and reads decimal commas.
type foldCollation struct{}

func (foldCollation) Compare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b)) * 7
}

func (foldCollation) ParseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

type fakeLocales struct {
	known  map[domain.Locale]bool
	active domain.Locale
}

func newFakeLocales(active domain.Locale, known ...domain.Locale) *fakeLocales {
	f := &fakeLocales{known: make(map[domain.Locale]bool), active: active}
	for _, l := range known {
		f.known[l] = true
	}
	return f
}

func (f *fakeLocales) Locales() []domain.Locale {
	locales := []domain.Locale{domain.LocaleNone}
	for l := range f.known {
		locales = append(locales, l)
	}
	return locales
}

func (f *fakeLocales) Active() domain.Locale {
	return f.active
}

func (f *fakeLocales) Collation(locale domain.Locale) (driven.Collation, error) {
	if !f.known[locale] {
		return nil, fmt.Errorf("%w: unknown locale %s", domain.ErrInvalidSortKey, locale)
	}
	return foldCollation{}, nil
}

// fakeKeySource returns fixed keys and records the prompt it saw.
type fakeKeySource struct {
	keys   []domain.SortKey
	err    error
	prompt domain.KeyPrompt
	calls  int
}

func (f *fakeKeySource) RequestKeys(_ context.Context, prompt domain.KeyPrompt) ([]domain.SortKey, error) {
	f.calls++
	f.prompt = prompt
	return f.keys, f.err
}

func mustKeys(specs ...string) []domain.SortKey {
	keys, err := domain.ParseSortKeys(specs)
	if err != nil {
		panic(err)
	}
	return keys
}
