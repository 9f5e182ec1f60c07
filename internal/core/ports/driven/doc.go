// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Extractor: Converts one source file format into plain text
//   - ExtractorRegistry: Dispatches files to extractors by extension
//   - Segmenter / KeywordExtractor / ArticleChunker: Text pipeline stages
//   - LawStore: Document/article/chunk persistence plus the FTS index
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
