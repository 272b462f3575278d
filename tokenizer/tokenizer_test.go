package tokenizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_CountTokens(t *testing.T) {
	counter, err := NewCounter()
	require.NoError(t, err)

	tests := []struct {
		name    string
		text    string
		wantMin int // Approximate minimum tokens
		wantMax int // Approximate maximum tokens
	}{
		{name: "empty string", text: "", wantMin: 0, wantMax: 0},
		{name: "short text", text: "Hello, world!", wantMin: 2, wantMax: 5},
		{
			name:    "longer text",
			text:    "This is a longer piece of text that should have more tokens.",
			wantMin: 10,
			wantMax: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := counter.CountTokens(tt.text)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, tt.wantMin)
			assert.LessOrEqual(t, n, tt.wantMax)
		})
	}
}

func TestCounter_Truncate(t *testing.T) {
	counter, err := NewCounter()
	require.NoError(t, err)

	t.Run("fits", func(t *testing.T) {
		text := "a short sentence"
		got, total, err := counter.Truncate(text, 100)
		require.NoError(t, err)
		assert.Equal(t, text, got)
		assert.Positive(t, total)
	})

	t.Run("cut to limit", func(t *testing.T) {
		text := strings.Repeat("embedding vectors ", 200)
		total, err := counter.CountTokens(text)
		require.NoError(t, err)
		require.Greater(t, total, 50)

		got, reported, err := counter.Truncate(text, 50)
		require.NoError(t, err)
		assert.Equal(t, total, reported)
		assert.True(t, strings.HasPrefix(text, got))

		n, err := counter.CountTokens(got)
		require.NoError(t, err)
		assert.LessOrEqual(t, n, 50)
	})

	t.Run("empty", func(t *testing.T) {
		got, total, err := counter.Truncate("", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Zero(t, total)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, _, err := counter.Truncate("text", 0)
		assert.True(t, errors.Is(err, ErrInvalidLimit))
	})
}
