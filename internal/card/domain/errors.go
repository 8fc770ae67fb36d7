package domain

import (
	"github.com/allisson/binbot/internal/errors"
)

// Card domain errors.
var (
	// ErrInvalidPattern is returned when a pattern cannot produce a batch.
	ErrInvalidPattern = errors.Wrap(errors.ErrInvalidInput, "invalid card pattern")

	// ErrInvalidBin is returned for a BIN that is not 6 to 8 digits.
	ErrInvalidBin = errors.Wrap(errors.ErrInvalidInput, "bin must be 6 to 8 digits")

	// ErrBinNotFound is returned when neither a remote source nor the local
	// classifier knows the BIN.
	ErrBinNotFound = errors.Wrap(errors.ErrNotFound, "bin not found")

	// ErrInvalidCount is returned for a negative batch size.
	ErrInvalidCount = errors.Wrap(errors.ErrContractViolation, "count must not be negative")

	// ErrInvalidMode is returned for an unknown generation mode.
	ErrInvalidMode = errors.Wrap(errors.ErrContractViolation, "unknown generation mode")
)
