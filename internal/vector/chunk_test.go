package vector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		chunks := ChunkText("short text", 100, 20)
		assert.Equal(t, []string{"short text"}, chunks)
	})

	t.Run("empty and whitespace yield nothing", func(t *testing.T) {
		assert.Nil(t, ChunkText("", 100, 20))
		assert.Nil(t, ChunkText("   \n\t", 100, 20))
	})

	t.Run("long text is split with overlap", func(t *testing.T) {
		text := strings.Repeat("abcdefghij", 30) // 300 runes
		chunks := ChunkText(text, 100, 20)
		require.Greater(t, len(chunks), 1)

		for _, chunk := range chunks {
			assert.LessOrEqual(t, len([]rune(chunk)), 100)
		}

		// Consecutive chunks share the overlap region.
		first := []rune(chunks[0])
		second := []rune(chunks[1])
		assert.Equal(t, string(first[len(first)-20:]), string(second[:20]))
	})

	t.Run("multibyte text splits on rune boundaries", func(t *testing.T) {
		text := strings.Repeat("日本語のテキスト", 50)
		chunks := ChunkText(text, 100, 20)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len([]rune(chunk)), 100)
		}
	})

	t.Run("bad parameters fall back to defaults", func(t *testing.T) {
		text := strings.Repeat("x", 2500)
		chunks := ChunkText(text, 0, 0)
		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len([]rune(chunk)), defaultChunkSize)
		}

		// overlap >= size must not loop forever
		chunks = ChunkText(text, 10, 10)
		assert.NotEmpty(t, chunks)
	})

	t.Run("no content is lost", func(t *testing.T) {
		text := strings.Repeat("abcdefghij", 30)
		chunks := ChunkText(text, 100, 20)
		assert.Contains(t, chunks[len(chunks)-1], text[len(text)-10:])
	})
}
