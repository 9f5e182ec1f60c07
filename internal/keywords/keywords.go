// Package keywords derives domain tags for article bodies by substring
// matching against a fixed legal-term vocabulary. Deliberately cheap and
// deterministic: no tokenisation, no stemming, no runtime dependencies.
package keywords

import "strings"

// MaxKeywords caps the derived list per article.
const MaxKeywords = 10

// DefaultVocabulary returns the built-in legal vocabulary, grouped by
// domain: contract, family, labor, traffic, consumer, administrative,
// and procedure terms. Order matters: matches are collected in
// vocabulary order until the cap is reached.
func DefaultVocabulary() []string {
	return []string{
		"合同", "协议", "违约", "赔偿", "责任", "义务", "权利", "法律",
		"婚姻", "离婚", "财产", "抚养", "继承", "遗产",
		"劳动", "工伤", "社保", "工资", "辞职", "解雇",
		"交通", "事故", "保险", "理赔", "驾驶", "违章",
		"消费", "权益", "欺诈", "退货", "质量", "服务",
		"行政", "处罚", "程序", "申诉", "复议", "诉讼",
		"民事", "刑事", "证据", "审判", "执行", "仲裁",
	}
}

// Extractor matches article bodies against a vocabulary.
type Extractor struct {
	vocabulary []string
}

// New creates an extractor over the given vocabulary. A nil or empty
// vocabulary falls back to the built-in legal terms.
func New(vocabulary []string) *Extractor {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary()
	}
	return &Extractor{vocabulary: vocabulary}
}

// Extract returns up to MaxKeywords vocabulary terms contained in text,
// in vocabulary order, de-duplicated. Matching is exact, case-sensitive
// substring containment.
func (e *Extractor) Extract(text string) []string {
	var found []string
	seen := make(map[string]bool, MaxKeywords)
	for _, term := range e.vocabulary {
		if seen[term] {
			continue
		}
		if term != "" && strings.Contains(text, term) {
			found = append(found, term)
			seen[term] = true
			if len(found) == MaxKeywords {
				break
			}
		}
	}
	return found
}
