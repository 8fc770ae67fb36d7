package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/binbot/internal/errors"
	historyDomain "github.com/allisson/binbot/internal/history/domain"
)

// maxValueLength matches the width of history_entries.value.
const maxValueLength = 255

type historyUseCase struct {
	repo HistoryRepository
	now  func() time.Time
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(repo HistoryRepository) HistoryUseCase {
	return &historyUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// Record appends an entry. Values longer than the column are truncated.
func (h *historyUseCase) Record(ctx context.Context, kind historyDomain.Kind, value string) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "history value is required")
	}
	if len(value) > maxValueLength {
		value = value[:maxValueLength]
	}

	id, err := uuid.NewV7()
	if err != nil {
		return apperrors.Wrap(err, "failed to generate history entry id")
	}

	return h.repo.Create(ctx, &historyDomain.Entry{
		ID:        id,
		Kind:      kind,
		Value:     value,
		CreatedAt: h.now().UTC(),
	})
}

// DeleteOlderThan prunes entries older than the given number of days.
func (h *historyUseCase) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "days must not be negative")
	}

	cutoff := h.now().UTC().AddDate(0, 0, -days)
	return h.repo.DeleteOlderThan(ctx, cutoff, dryRun)
}
