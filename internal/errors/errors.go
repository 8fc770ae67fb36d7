// Package errors provides the domain error vocabulary shared by every module.
// Use cases return these (usually wrapped with context) and handlers translate
// them into transport responses.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates end-user data that cannot be processed, such as a
	// malformed card pattern or a BIN with letters in it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller is known but not allowed to do this.
	ErrForbidden = errors.New("forbidden")

	// ErrContractViolation indicates a programming error in the integration
	// (negative batch size, unknown generation mode). It is never caused by
	// end-user text and must not be reported as ErrInvalidInput.
	ErrContractViolation = errors.New("contract violation")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, skipping nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
