package domain

// SegmentUnit is one structurally-identified portion of a document,
// produced by the segmenter before keyword derivation and chunking.
type SegmentUnit struct {
	// Label is the structural marker verbatim (e.g. "第十二条"), or
	// FullTextArticleNumber in fallback mode.
	Label string

	// Body is the unit's text with the marker stripped.
	Body string

	// Chapter is the best-effort enclosing chapter label.
	Chapter string
}
