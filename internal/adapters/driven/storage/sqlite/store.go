package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/lawpack-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
	"github.com/custodia-labs/lawpack-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.LawStore = (*Store)(nil)

// Store is the SQLite-backed law store. A single writer process owns the
// database file for the duration of a build; verification readers attach
// only after the writer has closed.
type Store struct {
	db           *sql.DB
	path         string
	embeddingDim int
}

// Option configures the store.
type Option func(*Store)

// WithEmbeddingDim sets the zero-filled placeholder vector dimension.
func WithEmbeddingDim(dim int) Option {
	return func(s *Store) {
		if dim > 0 {
			s.embeddingDim = dim
		}
	}
}

// DefaultEmbeddingDim matches the mobile app's expected vector size.
const DefaultEmbeddingDim = 384

// Open opens (creating if needed) the database at dbPath and runs pending
// migrations. If fresh is true any existing file is deleted first, so a
// rebuild starts from an empty store.
func Open(dbPath string, fresh bool, opts ...Option) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	if fresh {
		// WAL sidecars must go with the main file or the reopened
		// database would replay stale pages.
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return nil, fmt.Errorf("removing stale database: %w", err)
			}
		}
	}

	// WAL keeps the build responsive to the occasional read. Pragmas go
	// in the DSN so every pool connection gets them; cascade deletes in
	// SaveDocument depend on foreign_keys being on for the connection
	// that runs the transaction, not just the first one opened.
	db, err := sql.Open("sqlite",
		dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:           db,
		path:         dbPath,
		embeddingDim: DefaultEmbeddingDim,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveDocument writes the document, its articles, their chunks, and all
// full-text index rows as one transaction. Rows keyed by the same
// identifiers from a previous run are replaced, index rows included, so a
// restarted build converges on the same state.
func (s *Store) SaveDocument(ctx context.Context, doc *domain.Document, articles []domain.Article) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %w", domain.ErrPersistence, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := s.saveDocumentTx(ctx, tx, doc, articles); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %w", domain.ErrPersistence, err)
	}
	return nil
}

//nolint:gocyclo // Sequential insert steps of one unit of work
func (s *Store) saveDocumentTx(ctx context.Context, tx *sql.Tx, doc *domain.Document, articles []domain.Article) error {
	// Drop the document's previous derived rows. FK cascades cover
	// articles and chunks; FTS tables have no FK and are cleared by id.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM chunks_fts WHERE chunk_id IN (
			SELECT c.id FROM chunks c
			JOIN articles a ON a.id = c.article_id
			WHERE a.document_id = ?
		)`, doc.ID); err != nil {
		return fmt.Errorf("clearing chunk index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM articles_fts WHERE article_id IN (
			SELECT id FROM articles WHERE document_id = ?
		)`, doc.ID); err != nil {
		return fmt.Errorf("clearing article index: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM articles WHERE document_id = ?", doc.ID); err != nil {
		return fmt.Errorf("clearing articles: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO documents (id, title, filename, file_type, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			filename = excluded.filename,
			file_type = excluded.file_type,
			content = excluded.content,
			created_at = excluded.created_at
	`, doc.ID, doc.Title, doc.Filename, doc.FileType, doc.Content, doc.CreatedAt); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}

	articleStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO articles (id, document_id, chapter, article_number, content, keywords, law_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing article statement: %w", err)
	}
	defer articleStmt.Close()

	chunkStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, article_id, position, chunk_text, chunk_type, embedding_vector, importance_score)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing chunk statement: %w", err)
	}
	defer chunkStmt.Close()

	for i := range articles {
		art := &articles[i]
		keywords := strings.Join(art.Keywords, " ")

		if _, err := articleStmt.ExecContext(ctx, art.ID, art.DocumentID, art.Chapter,
			art.ArticleNumber, art.Content, keywords, art.LawType, art.CreatedAt); err != nil {
			return fmt.Errorf("saving article %s: %w", art.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO articles_fts (article_id, title, content, keywords, law_type)
			VALUES (?, ?, ?, ?, ?)
		`, art.ID, art.ArticleNumber, art.Content, keywords, art.LawType); err != nil {
			return fmt.Errorf("indexing article %s: %w", art.ID, err)
		}

		for _, chunk := range art.Chunks {
			embedding := chunk.Embedding
			if embedding == nil {
				embedding = make([]float32, s.embeddingDim)
			}

			if _, err := chunkStmt.ExecContext(ctx, chunk.ID, chunk.ArticleID, chunk.Position,
				chunk.Text, chunk.Type, float32SliceToBytes(embedding), chunk.ImportanceScore); err != nil {
				return fmt.Errorf("saving chunk %s: %w", chunk.ID, err)
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO chunks_fts (chunk_id, chunk_text) VALUES (?, ?)
			`, chunk.ID, chunk.Text); err != nil {
				return fmt.Errorf("indexing chunk %s: %w", chunk.ID, err)
			}
		}
	}

	return nil
}

// SetMeta records one build-provenance key/value pair.
func (s *Store) SetMeta(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		return fmt.Errorf("%w: saving meta %s: %w", domain.ErrPersistence, key, err)
	}
	return nil
}

// GetMeta retrieves a provenance value.
func (s *Store) GetMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading meta %s: %w", key, err)
	}
	return value, nil
}

// Counts returns the document, article, and chunk row counts.
func (s *Store) Counts(ctx context.Context) (docs, articles, chunks int, err error) {
	for _, q := range []struct {
		table string
		dest  *int
	}{
		{"documents", &docs},
		{"articles", &articles},
		{"chunks", &chunks},
	} {
		if err = s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM "+q.table).Scan(q.dest); err != nil {
			return 0, 0, 0, fmt.Errorf("counting %s: %w", q.table, err)
		}
	}
	return docs, articles, chunks, nil
}

// LawTypes returns the distinct law-category tags observed, sorted.
func (s *Store) LawTypes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT law_type FROM articles ORDER BY law_type")
	if err != nil {
		return nil, fmt.Errorf("querying law types: %w", err)
	}
	defer rows.Close()

	var types []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scanning law type: %w", err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating law types: %w", err)
	}
	return types, nil
}

// SearchArticles runs a MATCH query against the article index.
func (s *Store) SearchArticles(ctx context.Context, query string, limit int) ([]string, error) {
	return s.searchIDs(ctx, `
		SELECT article_id FROM articles_fts
		WHERE articles_fts MATCH ? ORDER BY rank LIMIT ?
	`, query, limit)
}

// SearchChunks runs a MATCH query against the chunk index.
func (s *Store) SearchChunks(ctx context.Context, query string, limit int) ([]string, error) {
	return s.searchIDs(ctx, `
		SELECT chunk_id FROM chunks_fts
		WHERE chunks_fts MATCH ? ORDER BY rank LIMIT ?
	`, query, limit)
}

func (s *Store) searchIDs(ctx context.Context, q, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, fmt.Errorf("full-text query %q: %w", query, err)
	}
	defer rows.Close()

	var ids []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning search hit: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search hits: %w", err)
	}
	return ids, nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, filename, file_type, content, created_at
		FROM documents WHERE id = ?
	`, id)

	var doc domain.Document
	if err := row.Scan(&doc.ID, &doc.Title, &doc.Filename, &doc.FileType,
		&doc.Content, &doc.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	return &doc, nil
}

// ListArticles returns all articles for a document, with chunks, in
// insertion order.
func (s *Store) ListArticles(ctx context.Context, documentID string) ([]domain.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, chapter, article_number, content, keywords, law_type, created_at
		FROM articles WHERE document_id = ? ORDER BY rowid
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article //nolint:prealloc // size unknown from query
	for rows.Next() {
		var art domain.Article
		var keywords string
		if err := rows.Scan(&art.ID, &art.DocumentID, &art.Chapter, &art.ArticleNumber,
			&art.Content, &keywords, &art.LawType, &art.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		if keywords != "" {
			art.Keywords = strings.Fields(keywords)
		}
		articles = append(articles, art)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}

	for i := range articles {
		chunks, err := s.listChunks(ctx, articles[i].ID)
		if err != nil {
			return nil, err
		}
		articles[i].Chunks = chunks
	}
	return articles, nil
}

// listChunks returns the chunks for one article ordered by position.
func (s *Store) listChunks(ctx context.Context, articleID string) ([]domain.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, article_id, position, chunk_text, chunk_type, embedding_vector, importance_score
		FROM chunks WHERE article_id = ? ORDER BY position
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var chunks []domain.Chunk //nolint:prealloc // size unknown from query
	for rows.Next() {
		var chunk domain.Chunk
		var embedding []byte
		if err := rows.Scan(&chunk.ID, &chunk.ArticleID, &chunk.Position, &chunk.Text,
			&chunk.Type, &embedding, &chunk.ImportanceScore); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		chunk.Embedding = bytesToFloat32Slice(embedding)
		chunks = append(chunks, chunk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}
	return chunks, nil
}

// ==================== Helper Functions ====================

// float32SliceToBytes converts a []float32 to a little-endian byte slice
// for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
