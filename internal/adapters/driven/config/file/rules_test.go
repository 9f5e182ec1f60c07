package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawpack-cli/internal/chunker"
	"github.com/custodia-labs/lawpack-cli/internal/keywords"
)

func TestDefault(t *testing.T) {
	rules := Default()

	assert.NotEmpty(t, rules.Segment.SplitPatterns)
	assert.NotEmpty(t, rules.Segment.ChapterPatterns)
	assert.Equal(t, 10, rules.Segment.MinBodyLen)
	assert.Equal(t, keywords.DefaultVocabulary(), rules.Keywords.Vocabulary)
	assert.Equal(t, chunker.DefaultMaxLen, rules.Chunk.MaxLen)
	assert.Equal(t, chunker.DefaultOverlap, rules.Chunk.Overlap)
	assert.Equal(t, 384, rules.Embedding.Dim)
	assert.Equal(t, DefaultProbes(), rules.Verify.Probes)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	rules, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), rules)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[chunk]
max_len = 500

[verify]
probes = ["继承"]
`), 0o644))

	rules, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, rules.Chunk.MaxLen)
	assert.Equal(t, []string{"继承"}, rules.Verify.Probes)
	// Untouched sections keep their defaults.
	assert.Equal(t, chunker.DefaultOverlap, rules.Chunk.Overlap)
	assert.Equal(t, keywords.DefaultVocabulary(), rules.Keywords.Vocabulary)
	assert.Equal(t, 384, rules.Embedding.Dim)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSegmentConfig(t *testing.T) {
	rules := Default()
	cfg := rules.SegmentConfig()

	assert.Equal(t, rules.Segment.SplitPatterns, cfg.SplitPatterns)
	assert.Equal(t, rules.Segment.ChapterPatterns, cfg.ChapterPatterns)
	assert.Equal(t, rules.Segment.MinBodyLen, cfg.MinBodyLen)
}
