package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardUseCase "github.com/allisson/binbot/internal/card/usecase"
)

// RunLookupBin resolves issuer metadata for bin and prints it.
//
// Requirements: network access to the BIN lookup services. The database is
// optional and only used for the lookup history.
func RunLookupBin(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	w io.Writer,
	bin string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	metadata, err := useCase.LookupBin(ctx, bin)
	if err != nil {
		return fmt.Errorf("failed to lookup bin: %w", err)
	}

	logger.Info("bin resolved", slog.String("bin", metadata.BIN), slog.String("source", metadata.Source))

	if format == "json" {
		return writeJSON(w, metadata)
	}

	_, err = fmt.Fprintf(w,
		"BIN:      %s\nBrand:    %s\nType:     %s\nCategory: %s\nBank:     %s\nCountry:  %s\nSource:   %s\n",
		metadata.BIN,
		metadata.Brand,
		metadata.Type,
		metadata.Category,
		metadata.Bank,
		metadata.Country,
		metadata.Source,
	)
	return err
}
