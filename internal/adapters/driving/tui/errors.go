package tui

import "errors"

// ErrDialogFailed is returned when the key dialog stops abnormally.
var ErrDialogFailed = errors.New("tui: key dialog failed")
