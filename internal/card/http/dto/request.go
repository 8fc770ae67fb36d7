// Package dto provides data transfer objects for the card HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/binbot/internal/card/domain"
	customValidation "github.com/allisson/binbot/internal/validation"
)

// GenerateCardsRequest is the body of POST /v1/cards/generate. Count and Mode
// are optional and default to domain.DefaultBatchSize and domain.ModeFull.
type GenerateCardsRequest struct {
	Pattern string  `json:"pattern"`
	Count   *int    `json:"count"`
	Mode    *string `json:"mode"`
}

// Validate checks the request against the configured batch ceiling.
func (r *GenerateCardsRequest) Validate(maxCount int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Pattern,
			validation.Required,
			customValidation.NotBlank,
			customValidation.CardPattern,
		),
		validation.Field(&r.Count,
			validation.Min(0),
			validation.Max(maxCount),
		),
		validation.Field(&r.Mode,
			validation.In(string(domain.ModeFull), string(domain.ModeDateOnly)),
		),
	)
}

// ToInput applies defaults and converts to the use case input.
func (r *GenerateCardsRequest) ToInput() *domain.GenerateInput {
	input := &domain.GenerateInput{
		Pattern: r.Pattern,
		Count:   domain.DefaultBatchSize,
		Mode:    domain.ModeFull,
	}
	if r.Count != nil {
		input.Count = *r.Count
	}
	if r.Mode != nil {
		input.Mode = domain.Mode(*r.Mode)
	}
	return input
}
