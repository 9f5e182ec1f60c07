package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk_ShortTextSingleChunk(t *testing.T) {
	c := New()
	chunks := c.Chunk("DOC1:ab12cd34", "当事人应当遵循公平原则确定各方的权利和义务。")

	require.Len(t, chunks, 1)
	assert.Equal(t, "DOC1:ab12cd34#0", chunks[0].ID)
	assert.Equal(t, "DOC1:ab12cd34", chunks[0].ArticleID)
	assert.Equal(t, 0, chunks[0].Position)
	assert.Equal(t, DefaultChunkType, chunks[0].Type)
	assert.InDelta(t, 1.0, chunks[0].ImportanceScore, 0.001)
}

func TestChunk_Empty(t *testing.T) {
	c := New()
	assert.Nil(t, c.Chunk("A#", ""))
	assert.Nil(t, c.Chunk("A#", "   \n  "))
}

func TestChunk_SplitsOnSentences(t *testing.T) {
	c := New(WithMaxLen(20))

	text := "第一句话的内容在这里结束。第二句话的内容在这里结束。第三句话的内容在这里结束。"
	chunks := c.Chunk("A1", text)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk.Text)), 20)
	}
}

func TestChunk_NoContentLost(t *testing.T) {
	c := New(WithMaxLen(20), WithOverlap(0))

	text := "合同订立之后双方应当履行。违约方承担赔偿责任。争议可以提交仲裁解决。"
	chunks := c.Chunk("A1", text)

	var joined strings.Builder
	for _, chunk := range chunks {
		joined.WriteString(chunk.Text)
	}
	assert.Equal(t, text, joined.String())
}

func TestChunk_OversizedSentenceSlidesWithOverlap(t *testing.T) {
	c := New(WithMaxLen(10), WithOverlap(4))

	// One 30-rune sentence with no terminator until the end.
	text := strings.Repeat("条", 29) + "。"
	chunks := c.Chunk("A1", text)

	require.Greater(t, len(chunks), 2)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk.Text)), 10)
	}
	// Step is maxLen-overlap, so consecutive slices share content.
	first := []rune(chunks[0].Text)
	second := []rune(chunks[1].Text)
	assert.Equal(t, string(first[6:]), string(second[:4]))
}

func TestChunk_PositionsSequential(t *testing.T) {
	c := New(WithMaxLen(15))

	text := "第一句内容结束。第二句内容结束。第三句内容结束。第四句内容结束。"
	chunks := c.Chunk("A1", text)

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Position)
		assert.Equal(t, "A1#"+string(rune('0'+i)), chunk.ID)
	}
}

func TestNew_OverlapGuard(t *testing.T) {
	c := New(WithMaxLen(10), WithOverlap(10))
	assert.Equal(t, 2, c.overlap)

	c = New(WithMaxLen(10), WithOverlap(20))
	assert.Equal(t, 2, c.overlap)
}
