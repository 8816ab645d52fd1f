package domain

import "errors"

// ExitStatus is the outcome signalled to the calling application.
type ExitStatus int

// Process outcomes. The caller distinguishes all three.
const (
	// StatusSuccess means the sorted text was written.
	StatusSuccess ExitStatus = 0

	// StatusCancelled means the user cancelled and the input was echoed.
	StatusCancelled ExitStatus = 1

	// StatusInternalError means something broke.
	StatusInternalError ExitStatus = 255
)

// String returns the string representation.
func (s ExitStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusCancelled:
		return "cancelled"
	case StatusInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// StatusFor maps an error returned from the pipeline to an exit status.
func StatusFor(err error) ExitStatus {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrCancelled):
		return StatusCancelled
	default:
		return StatusInternalError
	}
}
