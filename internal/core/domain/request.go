package domain

// KeyPrompt carries what a key source needs to ask for sort keys.
type KeyPrompt struct {
	// FieldCount is the largest number of fields on any line.
	FieldCount int

	// Lines are the extracted lines, in input order.
	Lines []Line

	// Locales are the selectable locales, LocaleNone first.
	Locales []Locale

	// Active is the locale preselected for new keys.
	Active Locale

	// Defaults are configured keys to preselect, possibly empty.
	Defaults []SortKey

	// Preview returns the first marked lines as they would be ordered
	// by the given keys. May be nil.
	Preview func(keys []SortKey) []string
}

// SortRequest is one invocation of the sort pipeline.
type SortRequest struct {
	// Marked is the selection with markup; it is what gets reordered.
	Marked string

	// Plain is the selection without markup, used for entire-line keys.
	Plain string

	// Keys are the sort keys. Nil asks the key source; an empty,
	// non-nil slice sorts with no keys and keeps the input order.
	Keys []SortKey

	// Strict turns a marked/plain line count mismatch into an error.
	Strict bool
}

// SortResult is the outcome of a sort.
type SortResult struct {
	// Output is the text to hand back: sorted, or the input when cancelled.
	Output string

	// Status is StatusSuccess or StatusCancelled.
	Status ExitStatus

	// Keys are the keys that were applied.
	Keys []SortKey

	FieldCount int
	LineCount  int
	Mismatched bool
}

// Cancelled returns true if the user cancelled the sort.
func (r *SortResult) Cancelled() bool {
	return r.Status == StatusCancelled
}
