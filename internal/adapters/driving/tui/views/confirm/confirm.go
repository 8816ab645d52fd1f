// Package confirm provides the view shown when no sort key is enabled.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/keymap"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/messages"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/styles"
)

// View asks whether to cancel the sort.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int
	height int
}

// NewView creates a new confirm view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km, width: 80, height: 24}
}

// Init initialises the confirm view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles y/n answers. Yes cancels the sort, no returns to the keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch k := keyMsg.String(); {
	case keymap.Matches(k, v.keymap.Yes):
		return v, func() tea.Msg { return messages.SortCancelled{} }
	case keymap.Matches(k, v.keymap.No):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewKeys} }
	}
	return v, nil
}

// View renders the question.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Warning.Render("No field selected."))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render("This will cancel the sort."))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("Do you wish to cancel? (y/n)"))
	b.WriteString("\n")
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
