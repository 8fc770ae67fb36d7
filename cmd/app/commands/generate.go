package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardDomain "github.com/allisson/binbot/internal/card/domain"
	"github.com/allisson/binbot/internal/card/http/dto"
	cardUseCase "github.com/allisson/binbot/internal/card/usecase"
)

// RunGenerate prints a batch of cards for pattern. Text output is one entry
// per line so it can be piped.
func RunGenerate(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	w io.Writer,
	pattern string,
	count int,
	mode string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("count must be zero or positive, got: %d", count)
	}
	batchMode := cardDomain.Mode(mode)
	if err := batchMode.Validate(); err != nil {
		return err
	}

	batch, err := useCase.GenerateBatch(ctx, &cardDomain.GenerateInput{
		Pattern: pattern,
		Count:   count,
		Mode:    batchMode,
	})
	if err != nil {
		return fmt.Errorf("failed to generate cards: %w", err)
	}

	logger.Debug("batch generated", slog.String("batch", batch.String()))

	if format == "json" {
		return writeJSON(w, dto.MapBatchToResponse(batch))
	}

	for _, card := range batch.Cards {
		if _, err := fmt.Fprintln(w, card); err != nil {
			return err
		}
	}
	return nil
}
