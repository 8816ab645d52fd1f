package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
	"github.com/shawnhcorey/Field-Sort/internal/logger"
)

// Ensure Prompter implements the KeySource interface.
var _ driven.KeySource = (*Prompter)(nil)

// Prompter asks for sort keys by running the dialog as a Bubbletea program.
type Prompter struct {
	options []tea.ProgramOption
}

// NewPrompter creates a prompter. The options control where the dialog
// reads input and renders, e.g. tea.WithInputTTY and tea.WithOutput.
func NewPrompter(options ...tea.ProgramOption) *Prompter {
	return &Prompter{options: options}
}

// RequestKeys runs the dialog until the user submits or cancels.
func (p *Prompter) RequestKeys(ctx context.Context, prompt domain.KeyPrompt) (keys []domain.SortKey, err error) {
	defer func() {
		if r := recover(); r != nil {
			keys = nil
			err = fmt.Errorf("%w: %v", ErrDialogFailed, r)
		}
	}()

	logger.Debug("Opening key dialog for %d fields", prompt.FieldCount)

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.options...)
	final, runErr := tea.NewProgram(NewDialog(prompt), options...).Run()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if runErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDialogFailed, runErr)
	}

	dialog, ok := final.(*Dialog)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected model %T", ErrDialogFailed, final)
	}
	return dialog.Result()
}
