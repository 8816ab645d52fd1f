package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewKeys, "keys"},
		{ViewConfirm, "confirm"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestKeysSubmitted(t *testing.T) {
	keys := []domain.SortKey{domain.NewSortKey(1)}
	msg := KeysSubmitted{Keys: keys}

	assert.Equal(t, keys, msg.Keys)
}
