// Package textnorm canonicalises extracted legal text so the segmenter's
// marker-anchored patterns match reliably. Extraction frequently introduces
// full-width spaces and stray whitespace inside structural markers.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	// 第 十二 条 -> 第十二条. Extraction inserts spaces inside markers.
	looseMarker = regexp.MustCompile(`第\s*([一二三四五六七八九十百千万零〇0-9]+)\s*条`)

	// Force each marker to a line start with a single trailing space,
	// dropping a trailing colon/comma directly after the marker.
	markerLine = regexp.MustCompile(`\s*(第[一二三四五六七八九十百千万零〇0-9]+条)[：:，,]?\s*`)

	horizontalRuns = regexp.MustCompile(`[ \t]+`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
)

// Normalize canonicalises whitespace and structural markers. It is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	// Rule 1: full-width spaces and line endings.
	s = strings.ReplaceAll(s, "　", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	// Rule 2: tighten markers.
	s = looseMarker.ReplaceAllString(s, "第${1}条")

	// Rule 3: one marker per line start, single trailing space.
	s = markerLine.ReplaceAllString(s, "\n${1} ")

	// Rule 4: collapse whitespace runs and blank-line runs.
	s = horizontalRuns.ReplaceAllString(s, " ")
	s = blankLineRuns.ReplaceAllString(s, "\n\n")

	// Trailing whitespace only: a document that opens with a structural
	// marker keeps its leading newline so the marker stays line-anchored.
	return strings.TrimRight(s, " \t\n")
}
