package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"-1.5e3", -1500},
		{"+.5", 0.5},
		{"1_000", 1000},
		{"-1_000.000_5", -1000.0005},
		{"1e1_0", 1e10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDecimal(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseDecimal_Rejects(t *testing.T) {
	inputs := []string{
		"0x1p4",
		"-0X10",
		"_1",
		"1_",
		"1__0",
		"1_.5",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDecimal(input)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
		})
	}
}
