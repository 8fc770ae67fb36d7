// Package usecase implements the notes business logic: titled texts shared by
// the bot and the HTTP API, encrypted before they reach the database.
package usecase

import (
	"context"

	notesDomain "github.com/allisson/binbot/internal/notes/domain"
)

// NoteRepository persists notes. Content travels as ciphertext.
type NoteRepository interface {
	Upsert(ctx context.Context, note *notesDomain.Note) error
	Get(ctx context.Context, title string) (*notesDomain.Note, error)
	Delete(ctx context.Context, title string) error
	List(ctx context.Context, offset, limit int) ([]string, error)
}

// NoteUseCase defines the notes operations.
type NoteUseCase interface {
	// Save creates the note or replaces the content of an existing one.
	Save(ctx context.Context, title, content string) (*notesDomain.Note, error)

	// Get returns the note with its decrypted content.
	Get(ctx context.Context, title string) (*notesDomain.Note, error)

	// Delete removes a note. Returns ErrNoteNotFound when absent.
	Delete(ctx context.Context, title string) error

	// List returns note titles in ascending order.
	List(ctx context.Context, offset, limit int) ([]string, error)
}
