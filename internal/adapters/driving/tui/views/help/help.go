// Package help provides the keybinding help view.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/keymap"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/messages"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/styles"
)

// View lists every keybinding.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	model  help.Model
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	model := help.New()
	model.ShowAll = true
	return &View{styles: s, keymap: km, model: model}
}

// Init initialises the help view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update returns to the key table on esc, q or ?.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewKeys} }
	}
	return v, nil
}

// View renders the help.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(v.model.View(v.keymap))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("Each enabled row is a sort key; earlier rows take precedence."))
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("Lines missing a field sort before lines that have it."))
	b.WriteString("\n")
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.model.Width = width
}
