// Package domain defines the core business entities for the lawpack builder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One source law file after extraction
//   - Article: A structurally-identified unit of a document
//   - Chunk: A length-bounded slice of an article body
//   - BuildSummary / VerifyReport: Batch run outcomes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
