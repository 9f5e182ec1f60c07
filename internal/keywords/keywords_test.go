package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyVocabularyFallsBack(t *testing.T) {
	e := New(nil)
	got := e.Extract("合同双方应当承担违约责任")
	assert.Equal(t, []string{"合同", "违约", "责任"}, got)
}

func TestExtract_VocabularyOrder(t *testing.T) {
	e := New(nil)

	// Mentioned in reverse vocabulary order; output follows the
	// vocabulary, not the text.
	got := e.Extract("离婚后的财产分割与婚姻关系")
	assert.Equal(t, []string{"婚姻", "离婚", "财产"}, got)
}

func TestExtract_Deduplicates(t *testing.T) {
	e := New([]string{"合同", "合同", "赔偿"})
	got := e.Extract("合同与合同赔偿")
	assert.Equal(t, []string{"合同", "赔偿"}, got)
}

func TestExtract_CapsAtMax(t *testing.T) {
	e := New(nil)
	got := e.Extract(strings.Join(DefaultVocabulary(), ""))
	require.Len(t, got, MaxKeywords)
	assert.Equal(t, DefaultVocabulary()[:MaxKeywords], got)
}

func TestExtract_NoMatches(t *testing.T) {
	e := New(nil)
	assert.Empty(t, e.Extract("completely unrelated english text"))
	assert.Empty(t, e.Extract(""))
}

func TestExtract_CustomVocabulary(t *testing.T) {
	e := New([]string{"知识产权", "专利"})
	got := e.Extract("专利属于知识产权的一种")
	assert.Equal(t, []string{"知识产权", "专利"}, got)
}
