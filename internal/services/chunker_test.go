package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextShortInput(t *testing.T) {
	chunker := NewTextChunker()
	chunks := chunker.ChunkText("Short paragraph.", 1000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Short paragraph.", chunks[0])
}

func TestChunkTextSplitsOnParagraphs(t *testing.T) {
	chunker := NewTextChunker()
	text := strings.Repeat("word ", 30) + "\n\n" + strings.Repeat("other ", 30)

	chunks := chunker.ChunkText(text, 160)
	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], "word")
	assert.Contains(t, chunks[1], "other")
}

func TestChunkTextRespectsMaxSize(t *testing.T) {
	chunker := NewTextChunker()
	para := "This is a sentence. " + strings.Repeat("More words follow here. ", 40)

	for _, chunk := range chunker.ChunkText(para, 100) {
		assert.LessOrEqual(t, len(chunk), 130, "chunk should stay near the cap")
	}
}

func TestTruncateAtBoundary(t *testing.T) {
	chunker := NewTextChunker()

	short := "fits entirely"
	assert.Equal(t, short, chunker.TruncateAtBoundary(short, 100))

	long := strings.Repeat("First paragraph here. ", 10) + "\n\n" + strings.Repeat("Second paragraph here. ", 10)
	out := chunker.TruncateAtBoundary(long, 250)
	assert.NotEmpty(t, out)
	assert.Less(t, len(out), len(long))

	assert.Equal(t, "anything", chunker.TruncateAtBoundary("anything", 0))
}
