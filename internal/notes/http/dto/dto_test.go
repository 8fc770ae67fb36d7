package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	notesDomain "github.com/allisson/binbot/internal/notes/domain"
)

func TestSaveNoteRequest_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		req := SaveNoteRequest{Content: "be nice"}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_Empty", func(t *testing.T) {
		req := SaveNoteRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_Blank", func(t *testing.T) {
		req := SaveNoteRequest{Content: "   "}
		assert.Error(t, req.Validate())
	})
}

func TestMapNoteToResponse(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

	resp := MapNoteToResponse(&notesDomain.Note{
		ID:         id,
		Title:      "rules",
		Content:    "be nice",
		Ciphertext: []byte("sealed"),
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "be nice", resp.Content)
	assert.Equal(t, now, resp.UpdatedAt)
}

func TestMapTitlesToResponse(t *testing.T) {
	assert.Equal(t, []string{}, MapTitlesToResponse(nil).Titles)
	assert.Equal(t, []string{"rules"}, MapTitlesToResponse([]string{"rules"}).Titles)
}
