package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtractionFailed indicates a source file was unreadable, corrupt,
	// or produced no text. The file is skipped and the batch continues.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrUnsupportedFormat indicates no extractor is available for a file's
	// extension. Surfaced once at startup per format, not per file.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrSegmentationEmpty indicates segmentation produced no retainable
	// content even after the whole-document fallback. Only reachable when
	// the extracted text is itself empty.
	ErrSegmentationEmpty = errors.New("segmentation produced no articles")

	// ErrPersistence indicates a schema or insert failure. The current
	// document's transaction is rolled back; the batch continues.
	ErrPersistence = errors.New("persistence failed")

	// ErrNoDocumentsLoaded indicates the whole run produced an unusable
	// database. The only failure that makes the batch exit non-zero.
	ErrNoDocumentsLoaded = errors.New("no documents loaded")
)
