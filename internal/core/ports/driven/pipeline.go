package driven

import "github.com/custodia-labs/lawpack-cli/internal/core/domain"

// Segmenter splits normalised text into ordered structural units.
// Every non-empty input yields at least one unit (whole-document
// fallback).
type Segmenter interface {
	Segment(text, docTitle string) []domain.SegmentUnit
}

// KeywordExtractor derives a capped, ordered, de-duplicated keyword list
// from an article body.
type KeywordExtractor interface {
	Extract(text string) []string
}

// ArticleChunker splits an article body into bounded-length chunks with
// deterministic identifiers.
type ArticleChunker interface {
	Chunk(articleID, text string) []domain.Chunk
}
