// Package chunker splits article bodies into bounded-length chunks for
// index entries and UI previews.
package chunker

import (
	"strings"

	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
)

// DefaultMaxLen is the default maximum chunk length in runes.
const DefaultMaxLen = 200

// DefaultOverlap is the default overlap in runes for fixed-width slicing.
const DefaultOverlap = 50

// DefaultChunkType tags chunks produced from article bodies.
const DefaultChunkType = "content"

// Chunker splits text on sentence-ending punctuation where possible and
// falls back to fixed-width slicing with overlap for oversized sentences.
// Chunking never drops content, only splits it.
type Chunker struct {
	maxLen  int
	overlap int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxLen sets the maximum chunk length in runes.
func WithMaxLen(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.maxLen = n
		}
	}
}

// WithOverlap sets the overlap in runes between fixed-width slices.
func WithOverlap(n int) Option {
	return func(c *Chunker) {
		if n >= 0 {
			c.overlap = n
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		maxLen:  DefaultMaxLen,
		overlap: DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must leave room to advance.
	if c.overlap >= c.maxLen {
		c.overlap = c.maxLen / 4
	}

	return c
}

// Chunk splits text into chunks owned by articleID, with deterministic
// identifiers derived from the article identifier and position.
func (c *Chunker) Chunk(articleID, text string) []domain.Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	pieces := c.splitSentences(text)

	chunks := make([]domain.Chunk, 0, len(pieces))
	for _, piece := range pieces {
		chunks = append(chunks, domain.Chunk{
			ID:              domain.ChunkID(articleID, len(chunks)),
			ArticleID:       articleID,
			Position:        len(chunks),
			Text:            piece,
			Type:            DefaultChunkType,
			ImportanceScore: 1.0,
		})
	}
	return chunks
}

// splitSentences packs sentences (delimited by 。 or ；) into pieces of at
// most maxLen runes, re-attaching the 。 terminator the way the source
// pipeline did. Sentences longer than maxLen are sliced fixed-width with
// overlap so no content is dropped.
func (c *Chunker) splitSentences(text string) []string {
	runes := []rune(text)
	if len(runes) <= c.maxLen {
		return []string{text}
	}

	sentences := splitKeepingContent(text)

	var pieces []string
	var current []rune
	for _, sentence := range sentences {
		sr := []rune(sentence)

		if len(sr) > c.maxLen {
			// Flush, then slice the oversized sentence directly.
			if len(current) > 0 {
				pieces = append(pieces, strings.TrimSpace(string(current)))
				current = nil
			}
			pieces = append(pieces, c.slide(sr)...)
			continue
		}

		if len(current)+len(sr) > c.maxLen && len(current) > 0 {
			pieces = append(pieces, strings.TrimSpace(string(current)))
			current = nil
		}
		current = append(current, sr...)
	}
	if len(current) > 0 {
		pieces = append(pieces, strings.TrimSpace(string(current)))
	}
	return pieces
}

// splitKeepingContent splits on sentence-ending punctuation, keeping each
// terminator with its sentence so concatenating the results reproduces the
// input's non-whitespace content.
func splitKeepingContent(text string) []string {
	var sentences []string
	var current []rune
	for _, r := range text {
		current = append(current, r)
		if r == '。' || r == '；' {
			sentences = append(sentences, string(current))
			current = nil
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, string(current))
	}
	return sentences
}

// slide produces fixed-width slices with overlap from an oversized sentence.
func (c *Chunker) slide(runes []rune) []string {
	var pieces []string
	step := c.maxLen - c.overlap
	for start := 0; start < len(runes); start += step {
		end := start + c.maxLen
		if end > len(runes) {
			end = len(runes)
		}
		pieces = append(pieces, strings.TrimSpace(string(runes[start:end])))
		if end == len(runes) {
			break
		}
	}
	return pieces
}
