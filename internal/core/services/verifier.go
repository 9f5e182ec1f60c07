package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
	"github.com/custodia-labs/lawpack-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lawpack-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lawpack-cli/internal/logger"
)

// Ensure Verifier implements the interface.
var _ driving.Verifier = (*Verifier)(nil)

// probeLimit caps how many hits a probe query fetches. Only the count
// matters for verification, but a probe that cannot reach one hit fails.
const probeLimit = 50

// Verifier re-queries a built database and renders the integration report.
type Verifier struct {
	store  driven.LawStore
	dbPath string
}

// NewVerifier creates a verifier for the database at dbPath. The path is
// recorded in the report so consumers know which artefact was checked.
func NewVerifier(store driven.LawStore, dbPath string) *Verifier {
	return &Verifier{store: store, dbPath: dbPath}
}

// Verify checks row counts, law-type discoverability, and the probe MATCH
// queries. The check passes when every count is non-zero and every probe
// returns at least one hit. The report is returned even when checks fail;
// the error is non-nil only when a query itself fails.
func (v *Verifier) Verify(ctx context.Context, probes []string) (*domain.VerifyReport, error) {
	docs, articles, chunks, err := v.store.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}

	lawTypes, err := v.store.LawTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list law types: %w", err)
	}

	report := &domain.VerifyReport{
		GeneratedAt:   time.Now().UTC(),
		DatabasePath:  v.dbPath,
		DocumentCount: docs,
		ArticleCount:  articles,
		ChunkCount:    chunks,
		LawTypes:      lawTypes,
		Passed:        docs > 0 && articles > 0 && chunks > 0,
	}

	for _, term := range probes {
		ids, err := v.store.SearchArticles(ctx, term, probeLimit)
		if err != nil {
			return nil, fmt.Errorf("probe %q: %w", term, err)
		}
		if len(ids) == 0 {
			logger.Warn("Probe %q returned no hits", term)
			report.Passed = false
		}
		report.Probes = append(report.Probes, domain.ProbeResult{
			Term: term,
			Hits: len(ids),
		})
	}

	return report, nil
}

// WriteReport renders the report as indented JSON at path.
func WriteReport(report *domain.VerifyReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
