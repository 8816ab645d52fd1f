package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
)

// comparison selects how two resolved values are compared.
type comparison int

const (
	compareOrdinal comparison = iota
	compareCollated
	compareNumeric
)

// ResolvedKey is one line's value for one sort key, with the comparison
// strategy fixed when the key was assigned.
type ResolvedKey struct {
	// Present is false when the line has no such field.
	Present bool

	// Text is the raw value for text comparisons.
	Text string

	// Number is the parsed value for numeric comparisons.
	Number float64

	Direction domain.Direction

	kind      comparison
	collation driven.Collation
}

// KeyedLine is a line bound to its resolved keys, one per sort key.
type KeyedLine struct {
	Line domain.Line
	Keys []ResolvedKey
}

// resolver turns a field value into a ResolvedKey for one sort key.
type resolver struct {
	key       domain.SortKey
	kind      comparison
	collation driven.Collation
}

// AssignKeys resolves every sort key for every line. Collations are built
// once per key. Values that cannot be used as the key's type are absorbed
// here: missing fields become absent, unparsable numbers become zero.
func AssignKeys(
	lines []domain.Line, keys []domain.SortKey, locales driven.LocaleProvider,
) ([]KeyedLine, error) {
	resolvers := make([]resolver, len(keys))
	for i, key := range keys {
		r, err := newResolver(key, locales)
		if err != nil {
			return nil, fmt.Errorf("sort key %d (%s): %w", i+1, key, err)
		}
		resolvers[i] = r
	}

	keyed := make([]KeyedLine, len(lines))
	for i, line := range lines {
		resolved := make([]ResolvedKey, len(resolvers))
		for j := range resolvers {
			resolved[j] = resolvers[j].resolve(line)
		}
		keyed[i] = KeyedLine{Line: line, Keys: resolved}
	}

	return keyed, nil
}

func newResolver(key domain.SortKey, locales driven.LocaleProvider) (resolver, error) {
	if err := key.Validate(); err != nil {
		return resolver{}, err
	}

	r := resolver{key: key, kind: compareOrdinal}
	if key.Type == domain.TypeNumber {
		r.kind = compareNumeric
	}

	if !key.Locale.IsNone() {
		if locales == nil {
			return resolver{}, fmt.Errorf("%w: locale %s requested but no locale provider", domain.ErrInvalidSortKey, key.Locale)
		}
		collation, err := locales.Collation(key.Locale)
		if err != nil {
			return resolver{}, err
		}
		r.collation = collation
		if key.Type == domain.TypeText {
			r.kind = compareCollated
		}
	}

	return r, nil
}

func (r *resolver) resolve(line domain.Line) ResolvedKey {
	resolved := ResolvedKey{
		Direction: r.key.Direction,
		kind:      r.kind,
		collation: r.collation,
	}

	value, ok := line.Field(r.key.Field)
	if !ok {
		return resolved
	}

	resolved.Present = true
	resolved.Text = value
	if r.kind == compareNumeric {
		resolved.Number = r.number(value)
	}
	return resolved
}

// number parses a numeric field. Anything unparsable sorts as zero.
func (r *resolver) number(value string) float64 {
	var (
		n   float64
		err error
	)
	if r.collation != nil {
		n, err = r.collation.ParseNumber(value)
	} else {
		n, err = ParseNumber(value)
	}
	if err != nil || math.IsNaN(n) {
		return 0
	}
	return n
}

// ParseNumber reads a plain, locale-independent number.
// Surrounding whitespace is ignored.
func ParseNumber(s string) (float64, error) {
	return domain.ParseDecimal(strings.TrimSpace(s))
}
