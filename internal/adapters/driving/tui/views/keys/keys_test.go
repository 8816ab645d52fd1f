package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui/messages"
	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newView(fields int, defaults ...string) *View {
	keys, err := domain.ParseSortKeys(defaults)
	if err != nil {
		panic(err)
	}
	return NewView(nil, nil, domain.KeyPrompt{
		FieldCount: fields,
		Locales:    []domain.Locale{domain.LocaleNone, "de-DE"},
		Active:     "de-DE",
		Defaults:   keys,
	})
}

func press(v *View, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = v.Update(m)
	}
	return cmd
}

func TestNewView_OneRowPerField(t *testing.T) {
	v := newView(2)

	rows := v.Rows()
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Enabled)
	assert.True(t, rows[1].Enabled)
	assert.False(t, rows[2].Enabled)
	assert.Equal(t, domain.EntireLine, rows[2].Field)

	assert.Equal(t, []domain.SortKey{
		{Field: 1, Type: domain.TypeText, Direction: domain.Ascending, Locale: "de-DE"},
		{Field: 2, Type: domain.TypeText, Direction: domain.Ascending, Locale: "de-DE"},
	}, v.Keys())
}

func TestNewView_NoFieldsSortsByLine(t *testing.T) {
	v := newView(0)

	require.Equal(t, 1, v.RowCount())
	keys := v.Keys()
	require.Len(t, keys, 1)
	assert.True(t, keys[0].IsEntireLine())
}

func TestNewView_Defaults(t *testing.T) {
	v := newView(3, "2:number:desc", "9", "line:text:asc:sv")

	keys := v.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, domain.SortKey{Field: 2, Type: domain.TypeNumber, Direction: domain.Descending}, keys[0])
	assert.Equal(t, domain.SortKey{Field: domain.EntireLine, Type: domain.TypeText, Direction: domain.Ascending, Locale: "sv"}, keys[1])
	assert.Contains(t, v.Locales(), domain.Locale("sv"))
	assert.Equal(t, 2, v.EnabledCount())
}

func TestNewView_NoLocales(t *testing.T) {
	v := NewView(nil, nil, domain.KeyPrompt{FieldCount: 1})

	assert.Equal(t, []domain.Locale{domain.LocaleNone}, v.Locales())
	assert.Equal(t, domain.LocaleNone, v.Keys()[0].Locale)
}

func TestView_Navigation(t *testing.T) {
	v := newView(2)

	press(v, keyUp, keyLeft)
	row, col := v.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, ColumnEnabled, col)

	press(v, keyDown, runes("j"), keyDown)
	row, _ = v.Cursor()
	assert.Equal(t, 2, row)

	press(v, runes("k"), keyRight, runes("l"), keyRight, keyRight, keyRight)
	row, col = v.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, ColumnLocale, col)

	press(v, runes("h"))
	_, col = v.Cursor()
	assert.Equal(t, ColumnOrder, col)
}

func TestView_TabWraps(t *testing.T) {
	v := newView(1)

	for i := 0; i < int(columnCount); i++ {
		press(v, keyTab)
	}
	row, col := v.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, ColumnEnabled, col)

	for i := 0; i < int(columnCount); i++ {
		press(v, keyTab)
	}
	row, _ = v.Cursor()
	assert.Equal(t, 0, row)
}

func TestView_ToggleAndCycle(t *testing.T) {
	v := newView(3)

	press(v, keySpace)
	assert.False(t, v.Rows()[0].Enabled)
	press(v, keySpace)
	assert.True(t, v.Rows()[0].Enabled)

	press(v, keyRight, keySpace)
	assert.Equal(t, 2, v.Rows()[0].Field)
	press(v, keySpace, keySpace)
	assert.Equal(t, 1, v.Rows()[0].Field)

	press(v, keyRight, keySpace)
	assert.Equal(t, domain.TypeNumber, v.Rows()[0].Type)
	press(v, keySpace)
	assert.Equal(t, domain.TypeText, v.Rows()[0].Type)

	press(v, keyRight, keySpace)
	assert.Equal(t, domain.Descending, v.Rows()[0].Direction)

	press(v, keyRight, keySpace)
	assert.Equal(t, domain.LocaleNone, v.Keys()[0].Locale)
}

func TestView_LineRowFieldIsFixed(t *testing.T) {
	v := newView(2)

	cmd := press(v, keyDown, keyDown, keyRight, keySpace)

	assert.Nil(t, cmd)
	assert.Equal(t, domain.EntireLine, v.Rows()[2].Field)
}

func TestView_PreviewRequestedOnChange(t *testing.T) {
	var seen []domain.SortKey
	v := NewView(nil, nil, domain.KeyPrompt{
		FieldCount: 1,
		Preview: func(keys []domain.SortKey) []string {
			seen = keys
			return []string{"first", "second"}
		},
	})

	require.NotNil(t, v.Init())

	cmd := press(v, keyRight, keyRight, keySpace)
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.PreviewLoaded)
	require.True(t, ok)
	assert.Equal(t, domain.TypeNumber, seen[0].Type)

	v.Update(loaded)
	assert.Equal(t, []string{"first", "second"}, v.Preview())
	assert.Contains(t, v.View(), "second")
}

func TestView_NoPreviewFunction(t *testing.T) {
	v := newView(1)

	assert.Nil(t, v.Init())
	assert.Nil(t, press(v, keySpace))
}

func TestView_Confirm(t *testing.T) {
	v := newView(1)

	cmd := press(v, keyEnter)
	require.NotNil(t, cmd)

	submitted, ok := cmd().(messages.KeysSubmitted)
	require.True(t, ok)
	assert.Equal(t, v.Keys(), submitted.Keys)
}

func TestView_ConfirmWithNothingEnabled(t *testing.T) {
	v := newView(1)

	cmd := press(v, keySpace, keyEnter)
	require.NotNil(t, cmd)

	assert.Equal(t, messages.ViewChanged{View: messages.ViewConfirm}, cmd())
}

func TestView_CancelAndHelp(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEsc, runes("q")} {
		cmd := press(newView(1), k)
		require.NotNil(t, cmd)
		assert.Equal(t, messages.SortCancelled{}, cmd())
	}

	cmd := press(newView(1), runes("?"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())
}

func TestView_Render(t *testing.T) {
	v := newView(2)
	v.SetDimensions(120, 40)

	out := v.View()

	assert.Contains(t, out, "Sort by fields")
	assert.Contains(t, out, "Number of fields: 2")
	assert.Contains(t, out, "Field 1")
	assert.Contains(t, out, "then field 2")
	assert.Contains(t, out, "Sort by lines")
	assert.Contains(t, out, "de-DE")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")

	assert.Contains(t, newView(0).View(), "No fields found")
}

func TestView_WindowSize(t *testing.T) {
	v := newView(1)

	_, cmd := v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, v.ready)
	assert.Equal(t, 100, v.width)
}
