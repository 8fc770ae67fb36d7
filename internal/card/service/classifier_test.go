package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/binbot/internal/card/domain"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewDefaultClassifier()

	tests := []struct {
		prefix    string
		brand     string
		length    int
		cvvLength int
	}{
		{prefix: "4111", brand: domain.BrandVisa, length: 16, cvvLength: 3},
		{prefix: "424242", brand: domain.BrandVisa, length: 16, cvvLength: 3},
		{prefix: "510510", brand: domain.BrandMastercard, length: 16, cvvLength: 3},
		{prefix: "555555", brand: domain.BrandMastercard, length: 16, cvvLength: 3},
		{prefix: "371449", brand: domain.BrandAmex, length: 15, cvvLength: 4},
		{prefix: "340000", brand: domain.BrandAmex, length: 15, cvvLength: 4},
		{prefix: "601100", brand: domain.BrandDiscover, length: 16, cvvLength: 3},
		{prefix: "650842", brand: domain.BrandDiscover, length: 16, cvvLength: 3},
		{prefix: "644000", brand: domain.BrandDiscover, length: 16, cvvLength: 3},
		{prefix: "353011", brand: domain.BrandJCB, length: 16, cvvLength: 3},
		{prefix: "999999", brand: domain.BrandOther, length: 16, cvvLength: 3},
		{prefix: "56", brand: domain.BrandOther, length: 16, cvvLength: 3},
		{prefix: "", brand: domain.BrandOther, length: 16, cvvLength: 3},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			rule := classifier.Classify(tt.prefix)
			assert.Equal(t, tt.brand, rule.Name)
			assert.Equal(t, tt.length, rule.TotalLength)
			assert.Equal(t, tt.cvvLength, rule.CVVLength)
		})
	}
}

func TestClassifier_LongestPrefixWins(t *testing.T) {
	short := domain.BrandRule{Name: "short", TotalLength: 16, CVVLength: 3, Prefixes: []string{"6"}}
	long := domain.BrandRule{Name: "long", TotalLength: 19, CVVLength: 3, Prefixes: []string{"622"}}
	classifier := NewClassifier([]domain.BrandRule{short, long}, domain.OtherBrand)

	assert.Equal(t, "long", classifier.Classify("622126").Name)
	assert.Equal(t, "short", classifier.Classify("601100").Name)
}

func TestClassifier_TieKeepsDeclarationOrder(t *testing.T) {
	first := domain.BrandRule{Name: "first", TotalLength: 16, CVVLength: 3, Prefixes: []string{"62"}}
	second := domain.BrandRule{Name: "second", TotalLength: 16, CVVLength: 3, Prefixes: []string{"62"}}
	classifier := NewClassifier([]domain.BrandRule{first, second}, domain.OtherBrand)

	assert.Equal(t, "first", classifier.Classify("620000").Name)
}
