package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrCancelled indicates the user cancelled the sort.
	// It is a terminal outcome, not a failure: the input is echoed unchanged.
	ErrCancelled = errors.New("sort cancelled")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSortKey indicates a sort key that cannot be parsed or applied.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrNotImplemented indicates functionality is not yet available.
	// Date, time, currency and version data types report this.
	ErrNotImplemented = errors.New("not implemented")

	// ErrLineMismatch indicates the marked and plain texts do not have
	// the same number of lines.
	ErrLineMismatch = errors.New("marked and plain line counts differ")

	// ErrMissingKeySource indicates keys were needed but nothing can supply them.
	ErrMissingKeySource = errors.New("no sort key source configured")

	// ErrUnknownSetting indicates a configuration key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)
