package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataType(t *testing.T) {
	tests := []struct {
		input    string
		expected DataType
	}{
		{"text", TypeText},
		{"TEXT", TypeText},
		{"t", TypeText},
		{"", TypeText},
		{"number", TypeNumber},
		{"n", TypeNumber},
		{" Number ", TypeNumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDataType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDataType_Unimplemented(t *testing.T) {
	for _, name := range []string{"date", "time", "currency", "version"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDataType(name)
			assert.ErrorIs(t, err, ErrNotImplemented)
		})
	}
}

func TestParseDataType_Unknown(t *testing.T) {
	_, err := ParseDataType("colour")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestDataType_Description(t *testing.T) {
	assert.Equal(t, "Text", TypeText.Description())
	assert.Equal(t, "Number", TypeNumber.Description())
	assert.Equal(t, "Version", TypeVersion.Description())
	assert.Equal(t, "Unknown", DataType("x").Description())
	assert.False(t, TypeDate.IsValid())
	assert.Equal(t, []DataType{TypeText, TypeNumber}, AllDataTypes())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"", Ascending},
		{"a", Ascending},
		{"asc", Ascending},
		{"ascending", Ascending},
		{"d", Descending},
		{"DESC", Descending},
		{"descending", Descending},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected Locale
	}{
		{"", LocaleNone},
		{"none", LocaleNone},
		{"C", LocaleNone},
		{"POSIX", LocaleNone},
		{"C.UTF-8", LocaleNone},
		{"de_DE.UTF-8", Locale("de-DE")},
		{"de_DE.UTF-8@euro", Locale("de-DE")},
		{"sr_RS@latin", Locale("sr-RS")},
		{"fr-CA", Locale("fr-CA")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLocale(tt.input))
		})
	}
}

func TestLocale_String(t *testing.T) {
	assert.Equal(t, "none", LocaleNone.String())
	assert.True(t, LocaleNone.IsNone())
	assert.Equal(t, "en-GB", Locale("en-GB").String())
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SortKey
	}{
		{
			name:     "field only",
			input:    "1",
			expected: SortKey{Field: 1, Type: TypeText, Direction: Ascending},
		},
		{
			name:     "entire line by name",
			input:    "line",
			expected: SortKey{Field: EntireLine, Type: TypeText, Direction: Ascending},
		},
		{
			name:     "entire line by zero",
			input:    "0:number",
			expected: SortKey{Field: EntireLine, Type: TypeNumber, Direction: Ascending},
		},
		{
			name:     "all parts",
			input:    "2:number:desc:de_DE.UTF-8",
			expected: SortKey{Field: 2, Type: TypeNumber, Direction: Descending, Locale: "de-DE"},
		},
		{
			name:     "empty type keeps default",
			input:    "3::d",
			expected: SortKey{Field: 3, Type: TypeText, Direction: Descending},
		},
		{
			name:     "locale none",
			input:    "1:text:asc:none",
			expected: SortKey{Field: 1, Type: TypeText, Direction: Ascending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseSortKey_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not a number", "first"},
		{"negative", "-1"},
		{"bad type", "1:colour"},
		{"bad direction", "1:text:up"},
		{"too many parts", "1:text:asc:en:extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSortKey(tt.input)
			assert.ErrorIs(t, err, ErrInvalidSortKey)
		})
	}

	_, err := ParseSortKey("1:date")
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestSortKey_String_RoundTrip(t *testing.T) {
	keys := []SortKey{
		{Field: 1, Type: TypeText, Direction: Ascending},
		{Field: EntireLine, Type: TypeNumber, Direction: Descending},
		{Field: 4, Type: TypeText, Direction: Descending, Locale: "sv-SE"},
	}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			parsed, err := ParseSortKey(key.String())
			require.NoError(t, err)
			assert.Equal(t, key, parsed)
		})
	}

	assert.Equal(t, "line:number:descending:none", keys[1].String())
}

func TestSortKey_Validate(t *testing.T) {
	assert.NoError(t, NewSortKey(2).Validate())
	assert.ErrorIs(t, SortKey{Field: -1, Type: TypeText, Direction: Ascending}.Validate(), ErrInvalidSortKey)
	assert.ErrorIs(t, SortKey{Field: 1, Type: TypeDate, Direction: Ascending}.Validate(), ErrInvalidSortKey)
	assert.ErrorIs(t, SortKey{Field: 1, Type: TypeText}.Validate(), ErrInvalidSortKey)
}

func TestParseSortKeys(t *testing.T) {
	keys, err := ParseSortKeys([]string{"1", "2:n:d"})
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, TypeNumber, keys[1].Type)

	_, err = ParseSortKeys([]string{"1", "bogus"})
	assert.Error(t, err)
}

func TestSettings_Defaults(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.Interactive)
	assert.False(t, s.Strict)
	assert.Empty(t, s.DefaultKeys)

	s.DefaultKeys = []SortKey{NewSortKey(1)}
	s.ExtraLocales = []Locale{"fr-FR"}
	assert.Equal(t, []string{"1:text:ascending:none"}, s.DefaultKeySpecs())
	assert.Equal(t, []string{"fr-FR"}, s.LocaleStrings())
}
