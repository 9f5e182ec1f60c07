package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
	"github.com/custodia-labs/lawpack-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lawpack-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lawpack-cli/internal/logger"
	"github.com/custodia-labs/lawpack-cli/internal/textnorm"
)

// Ensure BuildOrchestrator implements the interface.
var _ driving.BuildOrchestrator = (*BuildOrchestrator)(nil)

// metaLang is recorded in build provenance; the pipeline's rules target
// Chinese legal text.
const metaLang = "zh-CN"

// BuildOrchestrator coordinates the batch pipeline: extract, normalise,
// segment, derive keywords, chunk, persist.
type BuildOrchestrator struct {
	registry  driven.ExtractorRegistry
	store     driven.LawStore
	segmenter driven.Segmenter
	keywords  driven.KeywordExtractor
	chunker   driven.ArticleChunker

	version      string
	embeddingDim int
}

// NewBuildOrchestrator creates a new build orchestrator. version and
// embeddingDim are recorded as build provenance in the meta table.
func NewBuildOrchestrator(
	registry driven.ExtractorRegistry,
	store driven.LawStore,
	segmenter driven.Segmenter,
	keywords driven.KeywordExtractor,
	chunker driven.ArticleChunker,
	version string,
	embeddingDim int,
) *BuildOrchestrator {
	return &BuildOrchestrator{
		registry:     registry,
		store:        store,
		segmenter:    segmenter,
		keywords:     keywords,
		chunker:      chunker,
		version:      version,
		embeddingDim: embeddingDim,
	}
}

// Build processes every supported file in srcDir in sorted order. A failure
// in one file is logged and counted; the batch continues. Returns
// domain.ErrNoDocumentsLoaded when no file made it into the store, since a
// database without documents is unusable.
func (o *BuildOrchestrator) Build(ctx context.Context, srcDir string) (*domain.BuildSummary, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	summary := &domain.BuildSummary{}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !o.registry.Supports(ext) {
			logger.Debug("Skipping %s: unsupported extension %q", name, ext)
			summary.Skipped++
			continue
		}

		logger.Debug("Processing: %s", name)
		articles, chunks, err := o.processFile(ctx, filepath.Join(srcDir, name))
		if err != nil {
			logger.Error("Failed to process %s: %v", name, err)
			summary.Failed++
			continue
		}

		summary.Processed++
		summary.Articles += articles
		summary.Chunks += chunks
	}

	if summary.Processed == 0 {
		return summary, domain.ErrNoDocumentsLoaded
	}

	if err := o.writeProvenance(ctx); err != nil {
		return summary, fmt.Errorf("write build metadata: %w", err)
	}

	logger.Info("Build complete: %d documents, %d articles, %d chunks (%d skipped, %d failed)",
		summary.Processed, summary.Articles, summary.Chunks, summary.Skipped, summary.Failed)
	return summary, nil
}

// processFile runs one source file through the whole pipeline and reports
// how many articles and chunks it produced.
func (o *BuildOrchestrator) processFile(ctx context.Context, path string) (articles, chunks int, err error) {
	text, err := o.registry.Extract(ctx, path)
	if err != nil {
		return 0, 0, fmt.Errorf("extract: %w", err)
	}

	text = textnorm.Normalize(text)
	if strings.TrimSpace(text) == "" {
		return 0, 0, fmt.Errorf("%w: no text extracted", domain.ErrExtractionFailed)
	}

	filename := filepath.Base(path)
	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	now := time.Now().UTC()

	doc := &domain.Document{
		ID:        domain.DocumentID(filename),
		Title:     title,
		Filename:  filename,
		FileType:  strings.ToLower(filepath.Ext(filename)),
		Content:   text,
		CreatedAt: now,
	}

	units := o.segmenter.Segment(text, title)
	if len(units) == 0 {
		return 0, 0, fmt.Errorf("%w: %s", domain.ErrSegmentationEmpty, filename)
	}

	records := make([]domain.Article, 0, len(units))
	seen := make(map[string]int, len(units))
	for _, unit := range units {
		occurrence := seen[unit.Label]
		seen[unit.Label]++

		articleID := domain.ArticleID(doc.ID, unit.Label, occurrence)
		article := domain.Article{
			ID:            articleID,
			DocumentID:    doc.ID,
			Chapter:       unit.Chapter,
			ArticleNumber: unit.Label,
			Content:       unit.Body,
			Keywords:      o.keywords.Extract(unit.Body),
			LawType:       title,
			CreatedAt:     now,
			Chunks:        o.chunker.Chunk(articleID, unit.Body),
		}
		chunks += len(article.Chunks)
		records = append(records, article)
	}

	if err := o.store.SaveDocument(ctx, doc, records); err != nil {
		return 0, 0, fmt.Errorf("save: %w", err)
	}
	return len(records), chunks, nil
}

// writeProvenance records the build metadata rows. A rebuild overwrites
// them; build_id is fresh per run so consumers can tell rebuilds apart.
func (o *BuildOrchestrator) writeProvenance(ctx context.Context) error {
	meta := map[string]string{
		"created_at":      time.Now().UTC().Format(time.RFC3339),
		"builder_version": o.version,
		"lang":            metaLang,
		"build_id":        uuid.NewString(),
		"embedding_dim":   strconv.Itoa(o.embeddingDim),
	}
	for key, value := range meta {
		if err := o.store.SetMeta(ctx, key, value); err != nil {
			return fmt.Errorf("set meta %s: %w", key, err)
		}
	}
	return nil
}
