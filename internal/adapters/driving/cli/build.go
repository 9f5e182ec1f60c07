package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lawpack-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lawpack-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lawpack-cli/internal/chunker"
	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
	"github.com/custodia-labs/lawpack-cli/internal/core/services"
	"github.com/custodia-labs/lawpack-cli/internal/extractors"
	"github.com/custodia-labs/lawpack-cli/internal/extractors/docx"
	"github.com/custodia-labs/lawpack-cli/internal/extractors/pdf"
	"github.com/custodia-labs/lawpack-cli/internal/extractors/plaintext"
	"github.com/custodia-labs/lawpack-cli/internal/keywords"
	"github.com/custodia-labs/lawpack-cli/internal/segment"
)

var (
	buildSrc   string
	buildDB    string
	buildRules string
	buildFresh bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the database from a directory of law documents",
	Long: `Processes every supported file in the source directory: extracts
text, segments it into articles, derives keywords, chunks article bodies,
and loads everything into the destination database. Failures are isolated
per file; the run fails only when no document could be loaded.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildSrc, "src", "laws", "source document directory")
	buildCmd.Flags().StringVar(&buildDB, "db", "lawpack.db", "destination database path")
	buildCmd.Flags().StringVar(&buildRules, "rules", "", "TOML rule file overriding built-in defaults")
	buildCmd.Flags().BoolVar(&buildFresh, "fresh", false, "delete the destination database before building")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	rules, err := file.Load(buildRules)
	if err != nil {
		return err
	}

	segmenter, err := segment.New(rules.SegmentConfig())
	if err != nil {
		return fmt.Errorf("compile segmentation rules: %w", err)
	}

	store, err := sqlite.Open(buildDB, buildFresh,
		sqlite.WithEmbeddingDim(rules.Embedding.Dim))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close() //nolint:errcheck // read-write handle, flushed per transaction

	registry := extractors.NewRegistry(docx.New(), pdf.New(), plaintext.New())
	orchestrator := services.NewBuildOrchestrator(
		registry,
		store,
		segmenter,
		keywords.New(rules.Keywords.Vocabulary),
		chunker.New(
			chunker.WithMaxLen(rules.Chunk.MaxLen),
			chunker.WithOverlap(rules.Chunk.Overlap),
		),
		version,
		rules.Embedding.Dim,
	)

	cmd.Printf("Building %s from %s...\n", buildDB, buildSrc)
	summary, err := orchestrator.Build(cmd.Context(), buildSrc)
	if err != nil {
		if errors.Is(err, domain.ErrNoDocumentsLoaded) {
			return fmt.Errorf("build produced no documents from %s", buildSrc)
		}
		return fmt.Errorf("build failed: %w", err)
	}

	cmd.Printf("Done: %d documents, %d articles, %d chunks (%d skipped, %d failed)\n",
		summary.Processed, summary.Articles, summary.Chunks,
		summary.Skipped, summary.Failed)
	return nil
}
