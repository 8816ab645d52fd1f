package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

func scripted(input string) *Prompter {
	return NewPrompter(
		tea.WithInput(strings.NewReader(input)),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignals(),
	)
}

func TestPrompter_Submit(t *testing.T) {
	keys, err := scripted("\r").RequestKeys(context.Background(), domain.KeyPrompt{FieldCount: 1})

	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, 1, keys[0].Field)
}

func TestPrompter_Cancel(t *testing.T) {
	_, err := scripted("q").RequestKeys(context.Background(), domain.KeyPrompt{FieldCount: 1})

	assert.ErrorIs(t, err, domain.ErrCancelled)
}

func TestPrompter_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(
		tea.WithInput(&bytes.Buffer{}),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignals(),
	)
	_, err := p.RequestKeys(ctx, domain.KeyPrompt{FieldCount: 1})

	assert.ErrorIs(t, err, context.Canceled)
}
