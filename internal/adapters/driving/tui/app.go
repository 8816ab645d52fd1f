// Package tui provides the interactive sort key dialog for fieldsort.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/components/status"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/keymap"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/messages"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/styles"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/views/confirm"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/views/help"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/views/keys"
	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// Dialog asks the user for sort keys, following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type Dialog struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	keysView    *keys.View
	confirmView *confirm.View
	helpView    *help.View
	statusBar   *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// result holds the submitted keys; cancelled is set on cancel.
	result    []domain.SortKey
	submitted bool
	cancelled bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first window size has arrived.
	ready bool
}

// Ensure Dialog implements tea.Model.
var _ tea.Model = (*Dialog)(nil)

// NewDialog creates a dialog for the given prompt.
func NewDialog(prompt domain.KeyPrompt) *Dialog {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	d := &Dialog{
		styles:      s,
		keymap:      km,
		keysView:    keys.NewView(s, km, prompt),
		confirmView: confirm.NewView(s, km),
		helpView:    help.NewView(s, km),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewKeys,
	}
	d.syncStatus()
	return d
}

// Init implements tea.Model.
func (d *Dialog) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fieldsort"),
		d.keysView.Init(),
	)
}

// Update implements tea.Model.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		d.ready = true
		d.keysView.SetDimensions(msg.Width, msg.Height)
		d.confirmView.SetDimensions(msg.Width, msg.Height)
		d.helpView.SetDimensions(msg.Width, msg.Height)
		d.statusBar.SetWidth(msg.Width)
		return d, nil

	case tea.KeyMsg:
		// Global cancel with ctrl+c
		if msg.String() == "ctrl+c" {
			d.cancelled = true
			return d, tea.Quit
		}

		switch d.currentView {
		case messages.ViewKeys:
			d.keysView, cmd = d.keysView.Update(msg)
			d.syncStatus()
		case messages.ViewConfirm:
			d.confirmView, cmd = d.confirmView.Update(msg)
		case messages.ViewHelp:
			d.helpView, cmd = d.helpView.Update(msg)
		}
		return d, cmd

	case messages.PreviewLoaded:
		d.keysView, cmd = d.keysView.Update(msg)
		return d, cmd

	case messages.ViewChanged:
		d.currentView = msg.View
		d.syncStatus()
		return d, nil

	case messages.KeysSubmitted:
		d.result = msg.Keys
		d.submitted = true
		return d, tea.Quit

	case messages.SortCancelled:
		d.cancelled = true
		return d, tea.Quit
	}

	return d, nil
}

// syncStatus mirrors the active view and key count in the status bar.
func (d *Dialog) syncStatus() {
	switch d.currentView {
	case messages.ViewConfirm:
		d.statusBar.SetState(status.StateConfirm)
	case messages.ViewHelp:
		d.statusBar.SetState(status.StateHelp)
	default:
		d.statusBar.SetState(status.StateEditing)
	}
	d.statusBar.SetKeyCount(d.keysView.EnabledCount(), d.keysView.RowCount())
}

// View implements tea.Model.
func (d *Dialog) View() string {
	if !d.ready {
		return "Initialising..."
	}

	var body string
	switch d.currentView {
	case messages.ViewConfirm:
		body = d.confirmView.View()
	case messages.ViewHelp:
		body = d.helpView.View()
	default:
		body = d.keysView.View()
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(d.statusBar.View())
	return b.String()
}

// CurrentView returns the active view.
func (d *Dialog) CurrentView() messages.ViewType {
	return d.currentView
}

// KeysView returns the key table.
func (d *Dialog) KeysView() *keys.View {
	return d.keysView
}

// Result returns the submitted keys, or domain.ErrCancelled if the user
// cancelled or the dialog closed without a decision.
func (d *Dialog) Result() ([]domain.SortKey, error) {
	if d.submitted && !d.cancelled {
		return d.result, nil
	}
	return nil, domain.ErrCancelled
}
