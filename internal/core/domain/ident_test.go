package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentID_Deterministic(t *testing.T) {
	a := DocumentID("婚姻法.docx")
	b := DocumentID("婚姻法.docx")
	assert.Equal(t, a, b)
	assert.Len(t, a, 8)
	assert.Equal(t, a, DocumentID("/some/path/婚姻法.docx"))
}

func TestDocumentID_ExtensionIgnored(t *testing.T) {
	assert.Equal(t, DocumentID("劳动法.pdf"), DocumentID("劳动法.txt"))
}

func TestDocumentID_Uppercase(t *testing.T) {
	id := DocumentID("contract-law.docx")
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestArticleID_ScopedByDocument(t *testing.T) {
	a := ArticleID("AAAA1111", "第一条", 0)
	b := ArticleID("BBBB2222", "第一条", 0)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, ArticleID("AAAA1111", "第一条", 0))
	assert.Contains(t, a, "AAAA1111:")
}

func TestArticleID_RepeatedLabelsDistinct(t *testing.T) {
	// A cross-reference can surface the same label twice in one document;
	// the occurrence ordinal keeps the derivation collision-free while
	// staying deterministic.
	first := ArticleID("AAAA1111", "第一条", 0)
	second := ArticleID("AAAA1111", "第一条", 1)
	third := ArticleID("AAAA1111", "第一条", 2)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)
	assert.NotEqual(t, first, third)
	assert.Equal(t, second, ArticleID("AAAA1111", "第一条", 1))
}

func TestChunkID_Format(t *testing.T) {
	assert.Equal(t, "A1:beef#3", ChunkID("A1:beef", 3))
	assert.Equal(t, "A1:beef#0", ChunkID("A1:beef", 0))
}
