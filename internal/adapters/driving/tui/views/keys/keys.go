// Package keys provides the sort key table of the dialog.
package keys

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/keymap"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/messages"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/styles"
	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// Column identifies a cell within a row.
type Column int

const (
	ColumnEnabled Column = iota
	ColumnField
	ColumnType
	ColumnOrder
	ColumnLocale
	columnCount
)

var columnWidths = [columnCount]int{5, 18, 10, 14, 12}

var columnTitles = [columnCount]string{"", "Sort on", "Type", "Order", "Language"}

// Row is one candidate sort key.
type Row struct {
	Enabled   bool
	Field     int
	Type      domain.DataType
	Direction domain.Direction
	// Locale indexes the view's locale list.
	Locale int
}

// View is the sort key table with a live preview.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	prompt  domain.KeyPrompt
	locales []domain.Locale
	rows    []Row
	row     int
	col     Column
	preview []string
	width   int
	height  int
	ready   bool
}

// NewView creates the table for prompt. There is one row per field,
// all enabled, and a final entire-line row enabled only when the
// selection has no fields. Configured defaults replace that layout.
func NewView(s *styles.Styles, km *keymap.KeyMap, prompt domain.KeyPrompt) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:  s,
		keymap:  km,
		prompt:  prompt,
		locales: slices.Clone(prompt.Locales),
		width:   80,
		height:  24,
	}
	if len(v.locales) == 0 {
		v.locales = []domain.Locale{domain.LocaleNone}
	}

	active := v.localeIndex(prompt.Active)
	for i := 0; i < prompt.FieldCount; i++ {
		v.rows = append(v.rows, Row{
			Enabled:   true,
			Field:     i + 1,
			Type:      domain.TypeText,
			Direction: domain.Ascending,
			Locale:    active,
		})
	}
	v.rows = append(v.rows, Row{
		Enabled:   prompt.FieldCount == 0,
		Field:     domain.EntireLine,
		Type:      domain.TypeText,
		Direction: domain.Ascending,
		Locale:    active,
	})

	v.applyDefaults(prompt.Defaults)
	return v
}

func (v *View) applyDefaults(defaults []domain.SortKey) {
	if len(defaults) == 0 {
		return
	}
	for i := range v.rows {
		v.rows[i].Enabled = false
	}

	next := 0
	for _, key := range defaults {
		row := Row{
			Enabled:   true,
			Field:     key.Field,
			Type:      key.Type,
			Direction: key.Direction,
			Locale:    v.localeIndex(key.Locale),
		}
		switch {
		case key.IsEntireLine():
			v.rows[len(v.rows)-1] = row
		case next < v.prompt.FieldCount && key.Field <= v.prompt.FieldCount:
			v.rows[next] = row
			next++
		}
	}
}

// localeIndex finds l in the locale list, adding it if missing.
func (v *View) localeIndex(l domain.Locale) int {
	if i := slices.Index(v.locales, l); i >= 0 {
		return i
	}
	v.locales = append(v.locales, l)
	return len(v.locales) - 1
}

// Init requests the first preview.
func (v *View) Init() tea.Cmd {
	return v.previewCmd()
}

// Update handles messages for the key table.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PreviewLoaded:
		v.preview = msg.Lines
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.row > 0 {
			v.row--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.row < len(v.rows)-1 {
			v.row++
		}
	case keymap.Matches(k, v.keymap.Left):
		if v.col > 0 {
			v.col--
		}
	case keymap.Matches(k, v.keymap.Right):
		if v.col < columnCount-1 {
			v.col++
		}
	case keymap.Matches(k, v.keymap.Next):
		v.col++
		if v.col == columnCount {
			v.col = ColumnEnabled
			v.row = (v.row + 1) % len(v.rows)
		}
	case keymap.Matches(k, v.keymap.Toggle):
		if v.activate() {
			return v, v.previewCmd()
		}
	case keymap.Matches(k, v.keymap.Confirm):
		keys := v.Keys()
		if len(keys) == 0 {
			return v, changeView(messages.ViewConfirm)
		}
		return v, func() tea.Msg { return messages.KeysSubmitted{Keys: keys} }
	case keymap.Matches(k, v.keymap.Cancel):
		return v, func() tea.Msg { return messages.SortCancelled{} }
	case keymap.Matches(k, v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	}

	return v, nil
}

// activate toggles or cycles the focused cell. Reports whether a key changed.
func (v *View) activate() bool {
	r := &v.rows[v.row]

	switch v.col {
	case ColumnEnabled:
		r.Enabled = !r.Enabled
	case ColumnField:
		if r.Field == domain.EntireLine || v.prompt.FieldCount < 2 {
			return false
		}
		r.Field = r.Field%v.prompt.FieldCount + 1
	case ColumnType:
		r.Type = cycle(domain.AllDataTypes(), r.Type)
	case ColumnOrder:
		r.Direction = cycle(domain.AllDirections(), r.Direction)
	case ColumnLocale:
		r.Locale = (r.Locale + 1) % len(v.locales)
	}
	return true
}

func cycle[T comparable](options []T, current T) T {
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

func (v *View) previewCmd() tea.Cmd {
	if v.prompt.Preview == nil {
		return nil
	}
	keys := v.Keys()
	preview := v.prompt.Preview
	return func() tea.Msg {
		return messages.PreviewLoaded{Lines: preview(keys)}
	}
}

// Keys returns the enabled rows as sort keys, in precedence order.
func (v *View) Keys() []domain.SortKey {
	keys := make([]domain.SortKey, 0, len(v.rows))
	for _, r := range v.rows {
		if !r.Enabled {
			continue
		}
		keys = append(keys, domain.SortKey{
			Field:     r.Field,
			Type:      r.Type,
			Direction: r.Direction,
			Locale:    v.locales[r.Locale],
		})
	}
	return keys
}

// View renders the table and preview.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Sort by fields"))
	b.WriteString("\n")
	if v.prompt.FieldCount > 0 {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Number of fields: %d", v.prompt.FieldCount)))
	} else {
		b.WriteString(v.styles.Muted.Render("No fields found"))
	}
	b.WriteString("\n\n")

	b.WriteString(v.renderHeader())
	b.WriteString("\n")
	for i := range v.rows {
		b.WriteString(v.renderRow(i))
		b.WriteString("\n")
	}

	if len(v.preview) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Preview"))
		b.WriteString("\n")
		b.WriteString(v.styles.Preview.Render(strings.Join(v.preview, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHeader() string {
	cells := make([]string, columnCount)
	for c := range columnCount {
		cells[c] = v.styles.Subtitle.Inherit(v.styles.Cell).Width(columnWidths[c]).Render(columnTitles[c])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (v *View) renderRow(i int) string {
	r := v.rows[i]
	text := [columnCount]string{
		checkbox(r.Enabled),
		v.fieldLabel(i),
		r.Type.Description(),
		r.Direction.Description(),
		v.locales[r.Locale].String(),
	}

	cells := make([]string, columnCount)
	for c := range columnCount {
		style := v.styles.Cell
		switch {
		case i == v.row && c == v.col:
			style = v.styles.Focused
		case c == ColumnEnabled && r.Enabled:
			style = style.Inherit(v.styles.Enabled)
		case !r.Enabled:
			style = style.Inherit(v.styles.Muted)
		}
		cells[c] = style.Width(columnWidths[c]).Render(text[c])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (v *View) fieldLabel(i int) string {
	r := v.rows[i]
	if r.Field == domain.EntireLine {
		return "Sort by lines"
	}
	if i == 0 {
		return fmt.Sprintf("Field %d", r.Field)
	}
	return fmt.Sprintf("then field %d", r.Field)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Rows returns a copy of the rows.
func (v *View) Rows() []Row {
	return slices.Clone(v.rows)
}

// Locales returns the selectable locales.
func (v *View) Locales() []domain.Locale {
	return slices.Clone(v.locales)
}

// Cursor returns the focused row and column.
func (v *View) Cursor() (int, Column) {
	return v.row, v.col
}

// EnabledCount returns how many rows are enabled.
func (v *View) EnabledCount() int {
	n := 0
	for _, r := range v.rows {
		if r.Enabled {
			n++
		}
	}
	return n
}

// RowCount returns the number of rows.
func (v *View) RowCount() int {
	return len(v.rows)
}

// Preview returns the last preview received.
func (v *View) Preview() []string {
	return v.preview
}
