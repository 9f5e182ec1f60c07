package driven

import (
	"context"

	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
)

// LawStore persists documents, articles, and chunks, and owns the
// full-text index that mirrors them.
// Backed by SQLite with FTS5 virtual tables.
type LawStore interface {
	// SaveDocument writes a document with all its articles and their
	// chunks as one transaction. Existing rows keyed by the same
	// identifiers, including their full-text index rows, are replaced:
	// an index row is never touched outside the transaction that touches
	// its source row.
	SaveDocument(ctx context.Context, doc *domain.Document, articles []domain.Article) error

	// SetMeta records one build-provenance key/value pair
	// (insert-or-replace).
	SetMeta(ctx context.Context, key, value string) error

	// GetMeta retrieves a provenance value, or domain.ErrNotFound.
	GetMeta(ctx context.Context, key string) (string, error)

	// Counts returns the document, article, and chunk row counts.
	Counts(ctx context.Context) (docs, articles, chunks int, err error)

	// LawTypes returns the distinct law-category tags observed, sorted.
	LawTypes(ctx context.Context) ([]string, error)

	// SearchArticles runs a MATCH query against the article index and
	// returns the matching article identifiers.
	SearchArticles(ctx context.Context, query string, limit int) ([]string, error)

	// SearchChunks runs a MATCH query against the chunk index and
	// returns the matching chunk identifiers.
	SearchChunks(ctx context.Context, query string, limit int) ([]string, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListArticles returns all articles for a document, with chunks,
	// in insertion order.
	ListArticles(ctx context.Context, documentID string) ([]domain.Article, error)

	// Close releases the underlying database handle.
	Close() error
}
