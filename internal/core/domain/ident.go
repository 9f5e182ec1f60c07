package domain

import (
	"crypto/md5" //nolint:gosec // identifiers, not security
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
)

// Identifier derivation is a documented, deterministic function: identical
// inputs must produce identical identifiers across runs and across
// reimplementations, because insert-or-replace idempotence keys on them.

// DocumentID derives the document identifier from a source filename:
// the first 8 hex digits of the MD5 of the base name without extension,
// uppercased.
func DocumentID(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	sum := md5.Sum([]byte(base)) //nolint:gosec // identifiers, not security
	return strings.ToUpper(hex.EncodeToString(sum[:])[:8])
}

// ArticleID derives an article identifier from its owning document, its
// structural label, and the label's occurrence ordinal within the document.
// Scoping by document keeps repeated labels ("第一条" appears in every law)
// unique across documents; the ordinal keeps them unique within one, since
// cross-references can surface the same label twice ("违反第一条…"). The
// first occurrence hashes the bare label, so ordinary documents keep the
// plain derivation.
func ArticleID(documentID, label string, occurrence int) string {
	key := label
	if occurrence > 0 {
		key = fmt.Sprintf("%s#%d", label, occurrence)
	}
	sum := md5.Sum([]byte(key)) //nolint:gosec // identifiers, not security
	return documentID + ":" + hex.EncodeToString(sum[:])[:8]
}

// ChunkID derives a chunk identifier from its owning article and ordinal
// position.
func ChunkID(articleID string, position int) string {
	return fmt.Sprintf("%s#%d", articleID, position)
}
