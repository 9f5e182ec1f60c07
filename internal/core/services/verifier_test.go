package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawpack-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
)

func newVerifierStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "verify.db")
	store, err := sqlite.Open(path, false, sqlite.WithEmbeddingDim(4))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func saveVerifiableDocument(t *testing.T, store *sqlite.Store) {
	t.Helper()

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        "AAAA0001",
		Title:     "婚姻法",
		Filename:  "婚姻法.txt",
		FileType:  ".txt",
		Content:   "第一条 正文。",
		CreatedAt: now,
	}
	articleID := domain.ArticleID(doc.ID, "第一条", 0)
	articles := []domain.Article{{
		ID:            articleID,
		DocumentID:    doc.ID,
		Chapter:       domain.DefaultChapter,
		ArticleNumber: "第一条",
		Content:       "夫妻双方自愿离婚的准予离婚。",
		Keywords:      []string{"离婚"},
		LawType:       "婚姻法",
		CreatedAt:     now,
		Chunks: []domain.Chunk{{
			ID:              domain.ChunkID(articleID, 0),
			ArticleID:       articleID,
			Position:        0,
			Text:            "夫妻双方自愿离婚的准予离婚。",
			Type:            "content",
			ImportanceScore: 1.0,
		}},
	}}
	require.NoError(t, store.SaveDocument(context.Background(), doc, articles))
}

func TestVerify_Passes(t *testing.T) {
	store, path := newVerifierStore(t)
	saveVerifiableDocument(t, store)

	report, err := NewVerifier(store, path).Verify(context.Background(), []string{"离婚"})
	require.NoError(t, err)

	assert.True(t, report.Passed)
	assert.Equal(t, path, report.DatabasePath)
	assert.Equal(t, 1, report.DocumentCount)
	assert.Equal(t, 1, report.ArticleCount)
	assert.Equal(t, 1, report.ChunkCount)
	assert.Equal(t, []string{"婚姻法"}, report.LawTypes)
	require.Len(t, report.Probes, 1)
	assert.Equal(t, "离婚", report.Probes[0].Term)
	assert.Equal(t, 1, report.Probes[0].Hits)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestVerify_FailsOnMissedProbe(t *testing.T) {
	store, path := newVerifierStore(t)
	saveVerifiableDocument(t, store)

	report, err := NewVerifier(store, path).Verify(context.Background(), []string{"离婚", "继承"})
	require.NoError(t, err)

	assert.False(t, report.Passed)
	require.Len(t, report.Probes, 2)
	assert.Equal(t, 1, report.Probes[0].Hits)
	assert.Equal(t, 0, report.Probes[1].Hits)
}

func TestVerify_FailsOnEmptyDatabase(t *testing.T) {
	store, path := newVerifierStore(t)

	report, err := NewVerifier(store, path).Verify(context.Background(), nil)
	require.NoError(t, err)

	assert.False(t, report.Passed)
	assert.Zero(t, report.DocumentCount)
	assert.Empty(t, report.Probes)
}

func TestWriteReport(t *testing.T) {
	store, path := newVerifierStore(t)
	saveVerifiableDocument(t, store)

	report, err := NewVerifier(store, path).Verify(context.Background(), []string{"离婚"})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReport(report, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded domain.VerifyReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Passed)
	assert.Equal(t, report.DocumentCount, decoded.DocumentCount)
	assert.Equal(t, report.Probes, decoded.Probes)
}
