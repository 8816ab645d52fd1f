package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// CompareKeyed compares two lines key by key. The first key that differs
// decides; lines whose keys are all equal compare equal.
func CompareKeyed(a, b KeyedLine) int {
	n := min(len(a.Keys), len(b.Keys))
	for i := 0; i < n; i++ {
		if c := compareKey(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareKey orders two values of the same key. An absent value sorts
// before any present value; direction reverses the whole order, so absent
// values come last when descending.
func compareKey(a, b ResolvedKey) int {
	var c int
	switch {
	case !a.Present && !b.Present:
		c = 0
	case !a.Present:
		c = -1
	case !b.Present:
		c = 1
	case a.kind == compareNumeric:
		c = cmp.Compare(a.Number, b.Number)
	case a.kind == compareCollated:
		c = sign(a.collation.Compare(a.Text, b.Text))
	default:
		c = strings.Compare(a.Text, b.Text)
	}

	if a.Direction == domain.Descending {
		return -c
	}
	return c
}

// SortKeyed orders lines in place. The sort is stable: lines that
// compare equal keep their input order.
func SortKeyed(lines []KeyedLine) {
	slices.SortStableFunc(lines, CompareKeyed)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
