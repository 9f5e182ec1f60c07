package driven

import "context"

// Extractor converts a single source document format into plain text.
// Each extractor handles specific file extensions (e.g. ".docx", ".pdf").
type Extractor interface {
	// SupportedExtensions returns the lowercase file extensions this
	// extractor handles, including the leading dot.
	SupportedExtensions() []string

	// Extract reads the file at path and returns its text as non-empty
	// paragraph/page strings joined by newlines. Unreadable or corrupt
	// files return an error wrapping domain.ErrExtractionFailed.
	Extract(ctx context.Context, path string) (string, error)
}

// ExtractorRegistry selects the extractor for a file.
// The supported extension set is fixed at construction: requests for an
// unregistered extension fail fast with domain.ErrUnsupportedFormat
// rather than at first use.
type ExtractorRegistry interface {
	// Extract dispatches to the extractor registered for the file's
	// extension.
	Extract(ctx context.Context, path string) (string, error)

	// Supports reports whether an extension has a registered extractor.
	Supports(ext string) bool

	// SupportedExtensions returns all registered extensions, sorted.
	SupportedExtensions() []string
}
