// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewKeys is the sort key table.
	ViewKeys ViewType = iota
	// ViewConfirm asks whether to cancel when no key is enabled.
	ViewConfirm
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewKeys:
		return "keys"
	case ViewConfirm:
		return "confirm"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// PreviewLoaded carries the preview for a set of keys.
type PreviewLoaded struct {
	Lines []string
}

// KeysSubmitted ends the dialog with the chosen keys.
type KeysSubmitted struct {
	Keys []domain.SortKey
}

// SortCancelled ends the dialog without sorting.
type SortCancelled struct{}
