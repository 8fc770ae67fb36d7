package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	historyMocks "github.com/allisson/binbot/internal/history/usecase/mocks"
)

func TestRunCleanHistory(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	days := 30

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &historyMocks.MockHistoryUseCase{}
		mockUseCase.On("DeleteOlderThan", ctx, days, false).Return(int64(100), nil)

		var out bytes.Buffer
		err := RunCleanHistory(ctx, mockUseCase, logger, &out, days, false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 100 history entry(ies)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("dry-run-text-output", func(t *testing.T) {
		mockUseCase := &historyMocks.MockHistoryUseCase{}
		mockUseCase.On("DeleteOlderThan", ctx, days, true).Return(int64(7), nil)

		var out bytes.Buffer
		err := RunCleanHistory(ctx, mockUseCase, logger, &out, days, true, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Would delete 7 history entry(ies)")
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &historyMocks.MockHistoryUseCase{}
		mockUseCase.On("DeleteOlderThan", ctx, days, true).Return(int64(50), nil)

		var out bytes.Buffer
		err := RunCleanHistory(ctx, mockUseCase, logger, &out, days, true, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"count": 50`)
		require.Contains(t, out.String(), `"dry_run": true`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-days", func(t *testing.T) {
		mockUseCase := &historyMocks.MockHistoryUseCase{}
		err := RunCleanHistory(ctx, mockUseCase, logger, &bytes.Buffer{}, -1, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "days must be a positive number")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &historyMocks.MockHistoryUseCase{}
		mockUseCase.On("DeleteOlderThan", ctx, days, false).Return(int64(0), errors.New("db down"))

		err := RunCleanHistory(ctx, mockUseCase, logger, &bytes.Buffer{}, days, false, "text")

		require.ErrorContains(t, err, "failed to delete history: db down")
	})
}
