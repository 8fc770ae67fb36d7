// Package domain defines shared notes: short texts addressed by a one-word
// title.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/binbot/internal/errors"
)

// Note is a titled text. Content is plaintext in memory and Ciphertext is
// what the repository stores.
type Note struct {
	ID         uuid.UUID
	Title      string
	Content    string
	Ciphertext []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Note errors.
var (
	// ErrNoteNotFound indicates no note has the requested title.
	ErrNoteNotFound = errors.Wrap(errors.ErrNotFound, "note not found")

	// ErrTitleRequired indicates the title is missing.
	ErrTitleRequired = errors.Wrap(errors.ErrInvalidInput, "note title is required")

	// ErrContentRequired indicates the content is missing.
	ErrContentRequired = errors.Wrap(errors.ErrInvalidInput, "note content is required")
)
