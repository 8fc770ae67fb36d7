// Package dto provides data transfer objects for the notes HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/binbot/internal/validation"
)

// SaveNoteRequest is the body of PUT /v1/notes/:title.
type SaveNoteRequest struct {
	Content string `json:"content"`
}

// Validate validates the save note request.
func (r *SaveNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
