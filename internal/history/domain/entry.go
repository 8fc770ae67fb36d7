// Package domain defines the append-only lookup history.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/binbot/internal/errors"
)

// Kind tells what an entry recorded.
type Kind string

const (
	// KindBin is a BIN looked up or generated from.
	KindBin Kind = "bin"
	// KindPattern is a raw extrapolation pattern.
	KindPattern Kind = "pattern"
)

// ErrInvalidKind is returned for kinds other than KindBin and KindPattern.
var ErrInvalidKind = errors.Wrap(errors.ErrInvalidInput, "invalid history kind")

// Validate returns ErrInvalidKind for unknown kinds.
func (k Kind) Validate() error {
	switch k {
	case KindBin, KindPattern:
		return nil
	default:
		return errors.Wrapf(ErrInvalidKind, "kind %q", string(k))
	}
}

// Entry is one history record.
type Entry struct {
	ID        uuid.UUID
	Kind      Kind
	Value     string
	CreatedAt time.Time
}
