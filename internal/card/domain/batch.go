package domain

import (
	"fmt"

	"github.com/allisson/binbot/internal/errors"
)

// Mode selects what a batch contains.
type Mode string

const (
	// ModeFull produces "cc|mm|yy|cvv".
	ModeFull Mode = "full"
	// ModeDateOnly produces "mm|yy|cvv".
	ModeDateOnly Mode = "date_only"
)

// DefaultBatchSize is the number of cards produced when the caller does not say.
const DefaultBatchSize = 10

// Validate returns ErrInvalidMode for anything but the known modes.
func (m Mode) Validate() error {
	switch m {
	case ModeFull, ModeDateOnly:
		return nil
	default:
		return errors.Wrapf(ErrInvalidMode, "mode %q", string(m))
	}
}

// GenerateInput is the use case input for a batch.
type GenerateInput struct {
	Pattern string
	Count   int
	Mode    Mode
}

// Batch is a generated sequence plus what is known about its BIN.
type Batch struct {
	Pattern  string
	Mode     Mode
	Brand    BrandRule
	Cards    []string
	Metadata BinMetadata
}

// String renders a one-line summary for logs.
func (b *Batch) String() string {
	return fmt.Sprintf("%s batch of %d %s card(s) for %s", b.Mode, len(b.Cards), b.Brand.Name, b.Metadata.BIN)
}
