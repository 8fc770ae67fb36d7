package dto

import (
	"github.com/allisson/binbot/internal/card/domain"
)

// BrandResponse describes a brand rule.
type BrandResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Length      int    `json:"length"`
	CVVLength   int    `json:"cvv_length"`
}

// GenerateCardsResponse is the body returned by POST /v1/cards/generate.
type GenerateCardsResponse struct {
	Pattern  string             `json:"pattern"`
	Mode     string             `json:"mode"`
	Brand    BrandResponse      `json:"brand"`
	Metadata domain.BinMetadata `json:"metadata"`
	Cards    []string           `json:"cards"`
}

// MapBrandToResponse converts a brand rule to an API response.
func MapBrandToResponse(rule domain.BrandRule) BrandResponse {
	return BrandResponse{
		Name:        rule.Name,
		DisplayName: rule.DisplayName,
		Length:      rule.TotalLength,
		CVVLength:   rule.CVVLength,
	}
}

// MapBatchToResponse converts a generated batch to an API response.
func MapBatchToResponse(batch *domain.Batch) GenerateCardsResponse {
	cards := batch.Cards
	if cards == nil {
		cards = []string{}
	}
	return GenerateCardsResponse{
		Pattern:  batch.Pattern,
		Mode:     string(batch.Mode),
		Brand:    MapBrandToResponse(batch.Brand),
		Metadata: batch.Metadata,
		Cards:    cards,
	}
}
