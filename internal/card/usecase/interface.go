// Package usecase orchestrates card synthesis, BIN metadata resolution and
// lookup history.
package usecase

import (
	"context"

	"github.com/allisson/binbot/internal/card/domain"
	historyDomain "github.com/allisson/binbot/internal/history/domain"
)

// Generator is the synthesis engine (service.Generator).
type Generator interface {
	Classify(prefix string) domain.BrandRule
	GenerateBatch(raw string, count int, mode domain.Mode) ([]string, error)
}

// BinResolver fetches issuer metadata. It never fails: an unreachable source
// is reported as domain.Unavailable().
type BinResolver interface {
	Resolve(ctx context.Context, bin string) domain.LookupResult
}

// HistoryRecorder appends to the lookup history.
type HistoryRecorder interface {
	Record(ctx context.Context, kind historyDomain.Kind, value string) error
}

// CardUseCase defines the card business operations shared by the HTTP API,
// the bot and the CLI.
type CardUseCase interface {
	ClassifyBrand(ctx context.Context, prefix string) domain.BrandRule
	// GenerateBatch returns domain.ErrInvalidPattern when a positive count
	// yields no cards, and passes contract violations through unchanged.
	GenerateBatch(ctx context.Context, input *domain.GenerateInput) (*domain.Batch, error)
	// LookupBin resolves metadata, falling back to the local classifier.
	// Returns domain.ErrBinNotFound when nothing at all is known.
	LookupBin(ctx context.Context, bin string) (*domain.BinMetadata, error)
}
