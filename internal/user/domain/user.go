// Package domain defines the chat user registry entities.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/binbot/internal/errors"
)

// User is a chat participant who registered with the bot.
type User struct {
	ID uuid.UUID
	// ExternalID is the chat platform's user id, kept as text.
	ExternalID string
	Username   string
	CreatedAt  time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same external id exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrExternalIDRequired indicates the external id is empty.
	ErrExternalIDRequired = errors.Wrap(errors.ErrInvalidInput, "external id is required")
)
