package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalesCmd_WithoutLocale(t *testing.T) {
	dir := setupCLI(t, nil)

	out, err := run(t, dir, "locales")

	require.NoError(t, err)
	assert.Contains(t, out, "* none")
	assert.Contains(t, out, "No locale")
}

func TestLocalesCmd_FromEnvironment(t *testing.T) {
	dir := setupCLI(t, map[string]string{"LANG": "de_DE.UTF-8"})

	out, err := run(t, dir, "locales")

	require.NoError(t, err)
	assert.Contains(t, out, "  none")
	assert.Contains(t, out, "* de-DE")
	assert.Contains(t, out, "Deutsch")
}

func TestLocalesCmd_FromSettings(t *testing.T) {
	dir := setupCLI(t, map[string]string{"LANG": "de_DE.UTF-8"})

	_, err := run(t, dir, "settings", "set", "sort.locale", "none")
	require.NoError(t, err)
	_, err = run(t, dir, "settings", "set", "sort.extra_locales", "sv, fr")
	require.NoError(t, err)

	out, err := run(t, dir, "locales")

	require.NoError(t, err)
	assert.Contains(t, out, "* none")
	assert.Contains(t, out, "  sv")
	assert.Contains(t, out, "  fr")
	assert.NotContains(t, out, "de-DE")
}
