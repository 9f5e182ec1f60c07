// Package segment splits normalised legal text into an ordered sequence of
// article records using structural markers (第N条, 第N章, N、).
package segment

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
)

// numerals is the digit class for structural numbers: Chinese numerals or
// Arabic digits. Labels are stored verbatim as matched, never converted.
const numerals = `[一二三四五六七八九十百千万零〇0-9]+`

// Config holds the segmentation rules. Patterns are tried in order; the
// first one that yields more than one retained unit wins and the rest are
// not consulted. This is a deliberate simplicity trade-off: a document
// split by both 第N条 and 第N章 markers only ever segments on the first
// granularity. A pattern matching exactly once is kept only as a fallback
// when no pattern splits the text.
type Config struct {
	// SplitPatterns are the structural-marker patterns in priority order.
	// Each must capture the full marker label as its only group.
	SplitPatterns []string

	// ChapterPatterns locate an enclosing-unit marker inside a body,
	// capturing its number.
	ChapterPatterns []string

	// MinBodyLen is the exclusive length threshold (in runes) below which
	// a matched unit is discarded as segmentation noise.
	MinBodyLen int
}

// DefaultConfig returns the segmentation rules for Chinese legal text.
func DefaultConfig() Config {
	return Config{
		SplitPatterns: []string{
			`(第` + numerals + `条)`,
			`(第` + numerals + `章)`,
			`(` + numerals + `、)`,
		},
		ChapterPatterns: []string{
			`第(` + numerals + `)编`,
			`第(` + numerals + `)章`,
			`第(` + numerals + `)节`,
		},
		MinBodyLen: 10,
	}
}

// Segmenter splits normalised text into units.
type Segmenter struct {
	split   []*regexp.Regexp
	chapter []*regexp.Regexp
	minBody int
}

// New compiles the configured patterns. Invalid patterns return the
// compile error so misconfigured rule files fail at startup.
func New(cfg Config) (*Segmenter, error) {
	s := &Segmenter{minBody: cfg.MinBodyLen}
	for _, p := range cfg.SplitPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		s.split = append(s.split, re)
	}
	for _, p := range cfg.ChapterPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		s.chapter = append(s.chapter, re)
	}
	return s, nil
}

// Segment splits text into ordered units. The first pattern yielding more
// than one retained unit wins. When no pattern splits the text, the
// highest-priority pattern that matched exactly once still labels the text
// (a one-article document is a real document). Every non-empty input yields
// at least one unit: with no match at all, or nothing retained, the whole
// text becomes a single unit labelled domain.FullTextArticleNumber with the
// document title as its chapter.
func (s *Segmenter) Segment(text, docTitle string) []domain.SegmentUnit {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var single []domain.SegmentUnit
	for _, re := range s.split {
		parts := splitAtMarkers(text, re)
		if len(parts) == 0 {
			continue
		}

		units := make([]domain.SegmentUnit, 0, len(parts))
		for _, p := range parts {
			body := strings.TrimSpace(p.body)
			if len([]rune(body)) <= s.minBody {
				continue
			}
			units = append(units, domain.SegmentUnit{
				Label:   p.label,
				Body:    body,
				Chapter: s.detectChapter(body),
			})
		}
		if len(units) > 1 {
			return units
		}
		if len(units) == 1 && single == nil {
			single = units
		}
		// Nothing retained, or only one unit; a lower-priority pattern
		// may still split the text properly.
	}

	if single != nil {
		return single
	}

	return []domain.SegmentUnit{{
		Label:   domain.FullTextArticleNumber,
		Body:    text,
		Chapter: docTitle,
	}}
}

// marked is one region between two marker occurrences.
type marked struct {
	label string
	body  string
}

// splitAtMarkers slices text at each marker occurrence: every match opens a
// unit that runs to the next match (or end of text). Text before the first
// marker is dropped, as the original lookahead split did. RE2 has no
// lookahead, so boundaries come from match positions instead.
func splitAtMarkers(text string, re *regexp.Regexp) []marked {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	parts := make([]marked, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		parts = append(parts, marked{
			label: text[loc[2]:loc[3]],
			body:  text[loc[1]:end],
		})
	}
	return parts
}

// detectChapter scans the body for the first enclosing-unit marker and
// renders it as a 第N章 label, defaulting to domain.DefaultChapter.
func (s *Segmenter) detectChapter(body string) string {
	for _, re := range s.chapter {
		if m := re.FindStringSubmatch(body); m != nil {
			return "第" + m[1] + "章"
		}
	}
	return domain.DefaultChapter
}
