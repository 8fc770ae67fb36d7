package usecase

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/binbot/internal/card/domain"
	"github.com/allisson/binbot/internal/errors"
	historyDomain "github.com/allisson/binbot/internal/history/domain"
	customValidation "github.com/allisson/binbot/internal/validation"
)

type cardUseCase struct {
	generator Generator
	resolver  BinResolver
	history   HistoryRecorder
	logger    *slog.Logger
}

// NewCardUseCase creates a new CardUseCase. history may be nil when no
// database is configured.
func NewCardUseCase(
	generator Generator,
	resolver BinResolver,
	history HistoryRecorder,
	logger *slog.Logger,
) CardUseCase {
	return &cardUseCase{
		generator: generator,
		resolver:  resolver,
		history:   history,
		logger:    logger,
	}
}

func (c *cardUseCase) ClassifyBrand(_ context.Context, prefix string) domain.BrandRule {
	return c.generator.Classify(prefix)
}

func (c *cardUseCase) GenerateBatch(ctx context.Context, input *domain.GenerateInput) (*domain.Batch, error) {
	cards, err := c.generator.GenerateBatch(input.Pattern, input.Count, input.Mode)
	if err != nil {
		return nil, err
	}

	batch := &domain.Batch{Pattern: input.Pattern, Mode: input.Mode, Cards: cards}
	if input.Count == 0 {
		return batch, nil
	}
	if len(cards) == 0 {
		return nil, domain.ErrInvalidPattern
	}

	// The pattern parsed, so its first six characters are digits.
	bin := strings.TrimSpace(input.Pattern)[:6]
	batch.Brand = c.generator.Classify(bin)
	batch.Metadata = c.resolve(ctx, bin, batch.Brand)

	if input.Mode == domain.ModeFull {
		c.record(ctx, historyDomain.KindPattern, strings.TrimSpace(input.Pattern))
		c.record(ctx, historyDomain.KindBin, bin)
	}

	return batch, nil
}

func (c *cardUseCase) LookupBin(ctx context.Context, bin string) (*domain.BinMetadata, error) {
	if err := validation.Validate(bin, validation.Required, customValidation.BIN); err != nil {
		return nil, domain.ErrInvalidBin
	}

	rule := c.generator.Classify(bin)
	metadata := c.resolve(ctx, bin, rule)
	if metadata.Source == domain.SourceLocal && rule.IsOther() {
		return nil, errors.Wrapf(domain.ErrBinNotFound, "bin %s", bin)
	}

	c.record(ctx, historyDomain.KindBin, bin)
	return &metadata, nil
}

// resolve asks the remote sources and falls back to classifier-only metadata.
func (c *cardUseCase) resolve(ctx context.Context, bin string, rule domain.BrandRule) domain.BinMetadata {
	if c.resolver != nil {
		if result := c.resolver.Resolve(ctx, bin); result.Available {
			metadata := result.Metadata
			metadata.BIN = bin
			return metadata
		}
	}
	return domain.LocalMetadata(bin, rule)
}

// record appends to the history. Failures are logged and never fail the
// caller's operation.
func (c *cardUseCase) record(ctx context.Context, kind historyDomain.Kind, value string) {
	if c.history == nil {
		return
	}
	if err := c.history.Record(ctx, kind, value); err != nil {
		c.logger.Warn("failed to record history",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}
