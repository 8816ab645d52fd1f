package driven

import "github.com/shawnhcorey/Field-Sort/internal/core/domain"

// Collation is the comparison behaviour bound to one locale.
// Implementations need not be safe for concurrent use.
type Collation interface {
	// Compare orders two strings by the locale's collation rules.
	// Returns -1, 0 or +1.
	Compare(a, b string) int

	// ParseNumber reads a number written in the locale's format.
	ParseNumber(s string) (float64, error)
}

// LocaleProvider lists selectable locales and builds collations.
type LocaleProvider interface {
	// Locales returns the selectable locales, domain.LocaleNone first.
	Locales() []domain.Locale

	// Active returns the locale preselected for new keys.
	Active() domain.Locale

	// Collation returns a fresh collation for the locale.
	// Returns an error wrapping domain.ErrInvalidSortKey for unknown tags.
	Collation(locale domain.Locale) (Collation, error)
}
