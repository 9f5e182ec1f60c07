package domain

import "time"

// DefaultChapter is recorded when no enclosing chapter marker is found
// in an article body.
const DefaultChapter = "通用条款"

// FullTextArticleNumber labels the single fallback article emitted when a
// document contains no recognisable structural markers.
const FullTextArticleNumber = "全文"

// Document represents one source law file after text extraction.
// It is immutable within a build; a rebuild replaces it wholesale.
type Document struct {
	// ID is the deterministic identifier derived from the source filename.
	// See DocumentID for the derivation.
	ID string

	// Title is the law name, taken from the filename without extension.
	Title string

	// Filename is the source file's base name including extension.
	Filename string

	// FileType is the lowercase source extension (".docx", ".pdf", ...).
	FileType string

	// Content is the full normalised text extracted from the source.
	Content string

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Article represents one structurally-identified unit of a document:
// a numbered article, a chapter, or the whole-document fallback.
type Article struct {
	// ID is the deterministic identifier scoped to the owning document.
	ID string

	// DocumentID links to the owning Document.
	DocumentID string

	// Chapter is the best-effort enclosing chapter label.
	Chapter string

	// ArticleNumber is the structural label verbatim as matched
	// (e.g. "第十二条"), or FullTextArticleNumber in fallback mode.
	ArticleNumber string

	// Content is the article body text.
	Content string

	// Keywords is the derived keyword list: vocabulary order,
	// de-duplicated, at most ten entries.
	Keywords []string

	// LawType is the legal domain tag for the owning document.
	LawType string

	// CreatedAt is when the article was ingested.
	CreatedAt time.Time

	// Chunks are the bounded-length slices of Content, in order.
	Chunks []Chunk
}

// Chunk is a length-bounded slice of an article body, kept small for
// index entries and UI previews.
type Chunk struct {
	// ID is the deterministic identifier scoped to the owning article.
	ID string

	// ArticleID links to the owning Article.
	ArticleID string

	// Position is the ordinal position within the article.
	Position int

	// Text is the chunk content. Never exceeds the configured maximum.
	Text string

	// Type tags the kind of chunk (currently always "content").
	Type string

	// Embedding is the placeholder vector. Zero-filled until an
	// embedding model is run; never populated in this pipeline.
	Embedding []float32

	// ImportanceScore defaults to 1.0.
	ImportanceScore float64
}
