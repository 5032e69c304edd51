package messageformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/messageformat"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no apostrophes", "Hello world", "Hello world"},
		{"doubled apostrophe", "It''s working", "It's working"},
		{"quoted braces", "Use '{braces}' for literals", "Use {braces} for literals"},
		{"quoted apostrophe inside run", "'a''b'", "a'b"},
		{"unterminated quote", "say 'hi", "say hi"},
		{"only doubled", "''", "'"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, messageformat.Unescape(tt.in))
		})
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	t.Run("doubles apostrophes", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "O''Brien", messageformat.Escape("O'Brien"))
	})

	t.Run("survives unescape", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"O'Brien", "''", "'{x}'", "plain"} {
			require.Equal(t, s, messageformat.Unescape(messageformat.Escape(s)))
		}
	})
}

func TestIsQuoted(t *testing.T) {
	t.Parallel()

	text := "a '{b}' c"

	t.Run("delimiters are not quoted", func(t *testing.T) {
		t.Parallel()
		assert.False(t, messageformat.IsQuoted(text, 2))
		assert.False(t, messageformat.IsQuoted(text, 6))
	})

	t.Run("content of quoted run", func(t *testing.T) {
		t.Parallel()
		assert.True(t, messageformat.IsQuoted(text, 3))
		assert.True(t, messageformat.IsQuoted(text, 4))
		assert.True(t, messageformat.IsQuoted(text, 5))
	})

	t.Run("outside quoted run", func(t *testing.T) {
		t.Parallel()
		assert.False(t, messageformat.IsQuoted(text, 0))
		assert.False(t, messageformat.IsQuoted(text, 8))
	})

	t.Run("doubled apostrophe does not toggle", func(t *testing.T) {
		t.Parallel()
		s := "it''s {x}"
		assert.False(t, messageformat.IsQuoted(s, 2))
		assert.False(t, messageformat.IsQuoted(s, 3))
		assert.False(t, messageformat.IsQuoted(s, 6))
	})

	t.Run("doubled apostrophe inside run keeps it open", func(t *testing.T) {
		t.Parallel()
		s := "'a''{'"
		assert.True(t, messageformat.IsQuoted(s, 2))
		assert.True(t, messageformat.IsQuoted(s, 4))
		assert.False(t, messageformat.IsQuoted(s, 5))
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		assert.False(t, messageformat.IsQuoted(text, -1))
		assert.False(t, messageformat.IsQuoted(text, len(text)))
	})
}
