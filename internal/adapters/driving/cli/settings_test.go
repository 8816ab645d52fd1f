package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	dir := setupCLI(t, nil)

	out, err := run(t, dir, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Locale: (environment)")
	assert.Contains(t, out, "Default keys: (none)")
	assert.Contains(t, out, "Strict: false")
	assert.Contains(t, out, "Interactive: true")
	assert.Contains(t, out, "Config file: "+filepath.Join(dir, "config.toml"))
	assert.NotContains(t, out, "[Environment]")
}

func TestSettingsCmd_SetThenShow(t *testing.T) {
	dir := setupCLI(t, nil)

	out, err := run(t, dir, "settings", "set", "sort.default_keys", "2:n:d, line")
	require.NoError(t, err)
	assert.Contains(t, out, "Set sort.default_keys")

	_, err = run(t, dir, "settings", "set", "ui.interactive", "false")
	require.NoError(t, err)

	out, err = run(t, dir, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Default keys: 2:number:descending:none, line:text:ascending:none")
	assert.Contains(t, out, "Interactive: false")
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
}

func TestSettingsCmd_SetRejects(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		target error
	}{
		{"unknown key", "sort.colour", "blue", domain.ErrUnknownSetting},
		{"bad boolean", "sort.strict", "maybe", domain.ErrInvalidInput},
		{"bad key spec", "sort.default_keys", "one", domain.ErrInvalidSortKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupCLI(t, nil)

			_, err := run(t, dir, "settings", "set", tt.key, tt.value)

			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestSettingsCmd_EnvironmentOverrides(t *testing.T) {
	dir := setupCLI(t, map[string]string{"FIELDSORT_SORT_LOCALE": "sv"})

	out, err := run(t, dir, "settings", "set", "sort.locale", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "Note: sort.locale is overridden by FIELDSORT_SORT_LOCALE")

	out, err = run(t, dir, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Locale: sv")
	assert.Contains(t, out, "[Environment]")
	assert.Contains(t, out, "FIELDSORT_SORT_LOCALE=sv")
}

func TestSettingsCmd_Path(t *testing.T) {
	dir := setupCLI(t, nil)

	out, err := run(t, dir, "settings", "path")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml")+"\n", out)
}
