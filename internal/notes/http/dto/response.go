package dto

import (
	"time"

	notesDomain "github.com/allisson/binbot/internal/notes/domain"
)

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListNotesResponse holds a page of note titles.
type ListNotesResponse struct {
	Titles []string `json:"titles"`
}

// MapNoteToResponse converts a domain note to its API representation.
func MapNoteToResponse(note *notesDomain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// MapTitlesToResponse wraps titles, never returning a null list.
func MapTitlesToResponse(titles []string) ListNotesResponse {
	if titles == nil {
		titles = []string{}
	}
	return ListNotesResponse{Titles: titles}
}
