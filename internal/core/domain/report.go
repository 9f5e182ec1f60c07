package domain

import "time"

// BuildSummary aggregates the outcome of one batch run.
type BuildSummary struct {
	// Processed is the number of source files loaded successfully.
	Processed int

	// Skipped is the number of files ignored for unsupported extensions.
	Skipped int

	// Failed is the number of files that errored during extraction,
	// segmentation, or persistence.
	Failed int

	// Articles is the total number of article rows written.
	Articles int

	// Chunks is the total number of chunk rows written.
	Chunks int
}

// ProbeResult is the hit count for one full-text probe term.
type ProbeResult struct {
	Term string `json:"term"`
	Hits int    `json:"hits"`
}

// VerifyReport is the post-build self-check result, also written as the
// JSON integration report consumed by packaging scripts.
type VerifyReport struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	DatabasePath  string        `json:"database_path"`
	DocumentCount int           `json:"document_count"`
	ArticleCount  int           `json:"article_count"`
	ChunkCount    int           `json:"chunk_count"`
	LawTypes      []string      `json:"law_types"`
	Probes        []ProbeResult `json:"probes"`
	Passed        bool          `json:"passed"`
}
