package driving

import (
	"context"

	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
)

// BuildOrchestrator runs the document-to-database batch pipeline.
type BuildOrchestrator interface {
	// Build processes every supported file in srcDir in sorted order.
	// A failure in one file is logged and skipped; the batch continues.
	// Returns domain.ErrNoDocumentsLoaded when the run produced an
	// unusable database.
	Build(ctx context.Context, srcDir string) (*domain.BuildSummary, error)
}

// Verifier re-queries a built database and produces the integration report.
type Verifier interface {
	// Verify checks row counts, law-type discoverability, and the probe
	// MATCH queries. The report is returned even when checks fail; the
	// error is non-nil only for query failures.
	Verify(ctx context.Context, probes []string) (*domain.VerifyReport, error)
}
