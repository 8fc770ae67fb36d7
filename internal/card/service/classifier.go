package service

import (
	"slices"
	"strings"

	"github.com/allisson/binbot/internal/card/domain"
)

type prefixEntry struct {
	prefix string
	rule   domain.BrandRule
}

// Classifier maps leading card digits to a brand rule.
type Classifier struct {
	entries  []prefixEntry
	fallback domain.BrandRule
}

// NewClassifier indexes rules by prefix. When prefixes of equal length match,
// the rule declared first wins.
func NewClassifier(rules []domain.BrandRule, fallback domain.BrandRule) *Classifier {
	entries := make([]prefixEntry, 0, len(rules))
	for _, rule := range rules {
		for _, prefix := range rule.Prefixes {
			entries = append(entries, prefixEntry{prefix: prefix, rule: rule})
		}
	}
	// Longest prefix first; stable sort keeps declaration order among ties.
	slices.SortStableFunc(entries, func(a, b prefixEntry) int {
		return len(b.prefix) - len(a.prefix)
	})
	return &Classifier{entries: entries, fallback: fallback}
}

// NewDefaultClassifier uses the built-in brand table.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(domain.Brands, domain.OtherBrand)
}

// Classify returns the rule owning the longest prefix of digits, or the
// fallback rule when nothing matches.
func (c *Classifier) Classify(digits string) domain.BrandRule {
	for _, e := range c.entries {
		if strings.HasPrefix(digits, e.prefix) {
			return e.rule
		}
	}
	return c.fallback
}
