package extractors

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
	"github.com/custodia-labs/lawpack-cli/internal/extractors/plaintext"
)

func TestRegistry_Supports(t *testing.T) {
	r := NewRegistry(plaintext.New())

	assert.True(t, r.Supports(".txt"))
	assert.True(t, r.Supports(".md"))
	assert.True(t, r.Supports(".TXT"))
	assert.False(t, r.Supports(".docx"))
	assert.False(t, r.Supports(""))
}

func TestRegistry_SupportedExtensionsSorted(t *testing.T) {
	r := NewRegistry(plaintext.New())
	assert.Equal(t, []string{".md", ".txt"}, r.SupportedExtensions())
}

func TestRegistry_ExtractDispatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "婚姻法.txt")
	require.NoError(t, os.WriteFile(path, []byte("第一条 婚姻自由。"), 0o644))

	r := NewRegistry(plaintext.New())
	text, err := r.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "第一条 婚姻自由。", text)
}

func TestRegistry_UnsupportedExtension(t *testing.T) {
	r := NewRegistry(plaintext.New())

	_, err := r.Extract(context.Background(), "document.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
