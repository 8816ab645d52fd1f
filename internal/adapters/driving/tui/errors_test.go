package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

func TestErrDialogFailed(t *testing.T) {
	assert.Contains(t, ErrDialogFailed.Error(), "tui:")

	wrapped := fmt.Errorf("%w: boom", ErrDialogFailed)
	assert.True(t, errors.Is(wrapped, ErrDialogFailed))
	assert.Equal(t, domain.StatusInternalError, domain.StatusFor(wrapped))
}
