// Package usecase records and prunes the lookup history.
package usecase

import (
	"context"
	"time"

	historyDomain "github.com/allisson/binbot/internal/history/domain"
)

// HistoryRepository defines persistence for history entries.
type HistoryRepository interface {
	Create(ctx context.Context, entry *historyDomain.Entry) error
	// DeleteOlderThan removes entries created before olderThan, or only counts
	// them when dryRun is true.
	DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

// HistoryUseCase defines the history business logic.
type HistoryUseCase interface {
	Record(ctx context.Context, kind historyDomain.Kind, value string) error
	DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error)
}
