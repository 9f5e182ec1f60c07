// Package file loads the builder's rule file: segmentation patterns,
// keyword vocabulary, chunk sizing, and verification probes. Every field
// is optional; missing values fall back to the built-in Chinese legal
// defaults, so a rule file only needs to state what it overrides.
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/lawpack-cli/internal/chunker"
	"github.com/custodia-labs/lawpack-cli/internal/keywords"
	"github.com/custodia-labs/lawpack-cli/internal/segment"
)

// Rules is the TOML rule file shape.
type Rules struct {
	Segment struct {
		// SplitPatterns are structural-marker patterns in priority
		// order, each capturing the marker label.
		SplitPatterns []string `toml:"split_patterns"`

		// ChapterPatterns locate enclosing-unit markers, capturing
		// the number.
		ChapterPatterns []string `toml:"chapter_patterns"`

		// MinBodyLen is the noise threshold in runes.
		MinBodyLen int `toml:"min_body_len"`
	} `toml:"segment"`

	Keywords struct {
		// Vocabulary overrides the built-in legal term list.
		Vocabulary []string `toml:"vocabulary"`
	} `toml:"keywords"`

	Chunk struct {
		// MaxLen is the maximum chunk length in runes.
		MaxLen int `toml:"max_len"`

		// Overlap is the fixed-width slicing overlap in runes.
		Overlap int `toml:"overlap"`
	} `toml:"chunk"`

	Embedding struct {
		// Dim is the placeholder vector dimension.
		Dim int `toml:"dim"`
	} `toml:"embedding"`

	Verify struct {
		// Probes are the full-text probe terms.
		Probes []string `toml:"probes"`
	} `toml:"verify"`
}

// DefaultProbes are the verification probe terms: one per major legal
// domain covered by the default vocabulary.
func DefaultProbes() []string {
	return []string{"离婚", "劳动", "合同"}
}

// Default returns the rules with every built-in fallback applied.
func Default() Rules {
	var r Rules
	seg := segment.DefaultConfig()
	r.Segment.SplitPatterns = seg.SplitPatterns
	r.Segment.ChapterPatterns = seg.ChapterPatterns
	r.Segment.MinBodyLen = seg.MinBodyLen
	r.Keywords.Vocabulary = keywords.DefaultVocabulary()
	r.Chunk.MaxLen = chunker.DefaultMaxLen
	r.Chunk.Overlap = chunker.DefaultOverlap
	r.Embedding.Dim = 384
	r.Verify.Probes = DefaultProbes()
	return r
}

// Load reads a TOML rule file and fills gaps with defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Rules, error) {
	rules := Default()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rule file: %w", err)
	}

	var overrides Rules
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return Rules{}, fmt.Errorf("parsing rule file %s: %w", path, err)
	}

	if len(overrides.Segment.SplitPatterns) > 0 {
		rules.Segment.SplitPatterns = overrides.Segment.SplitPatterns
	}
	if len(overrides.Segment.ChapterPatterns) > 0 {
		rules.Segment.ChapterPatterns = overrides.Segment.ChapterPatterns
	}
	if overrides.Segment.MinBodyLen > 0 {
		rules.Segment.MinBodyLen = overrides.Segment.MinBodyLen
	}
	if len(overrides.Keywords.Vocabulary) > 0 {
		rules.Keywords.Vocabulary = overrides.Keywords.Vocabulary
	}
	if overrides.Chunk.MaxLen > 0 {
		rules.Chunk.MaxLen = overrides.Chunk.MaxLen
	}
	if overrides.Chunk.Overlap > 0 {
		rules.Chunk.Overlap = overrides.Chunk.Overlap
	}
	if overrides.Embedding.Dim > 0 {
		rules.Embedding.Dim = overrides.Embedding.Dim
	}
	if len(overrides.Verify.Probes) > 0 {
		rules.Verify.Probes = overrides.Verify.Probes
	}

	return rules, nil
}

// SegmentConfig converts the rules into the segmenter's configuration.
func (r Rules) SegmentConfig() segment.Config {
	return segment.Config{
		SplitPatterns:   r.Segment.SplitPatterns,
		ChapterPatterns: r.Segment.ChapterPatterns,
		MinBodyLen:      r.Segment.MinBodyLen,
	}
}
