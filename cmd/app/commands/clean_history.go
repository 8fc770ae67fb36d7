package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	historyUseCase "github.com/allisson/binbot/internal/history/usecase"
)

// RunCleanHistory deletes lookup history older than days. Supports dry-run
// mode to preview the deletion count.
//
// Requirements: Database must be migrated and accessible.
func RunCleanHistory(
	ctx context.Context,
	useCase historyUseCase.HistoryUseCase,
	logger *slog.Logger,
	w io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("cleaning history",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	count, err := useCase.DeleteOlderThan(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}

	if format == "json" {
		if err := writeJSON(w, map[string]any{
			"count":   count,
			"days":    days,
			"dry_run": dryRun,
		}); err != nil {
			return err
		}
	} else if dryRun {
		_, _ = fmt.Fprintf(w, "Dry-run mode: Would delete %d history entry(ies) older than %d day(s)\n", count, days)
	} else {
		_, _ = fmt.Fprintf(w, "Successfully deleted %d history entry(ies) older than %d day(s)\n", count, days)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}
