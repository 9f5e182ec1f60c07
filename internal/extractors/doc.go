// Package extractors converts heterogeneous source document formats into
// plain text. Each format lives in its own subpackage; the registry in this
// package dispatches by file extension and fixes the supported set at
// startup, so an unsupported format fails fast instead of at first use.
package extractors
