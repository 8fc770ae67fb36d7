package usecase

import (
	"context"
	"time"

	"github.com/allisson/binbot/internal/card/domain"
	"github.com/allisson/binbot/internal/metrics"
)

const metricsDomain = "cards"

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// ClassifyBrand records metrics for brand classification. It cannot fail.
func (c *cardUseCaseWithMetrics) ClassifyBrand(ctx context.Context, prefix string) domain.BrandRule {
	start := time.Now()
	rule := c.next.ClassifyBrand(ctx, prefix)
	c.record(ctx, "brand_classify", start, nil)
	return rule
}

// GenerateBatch records metrics for batch generation, plus the cards
// produced and where their metadata came from.
func (c *cardUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	input *domain.GenerateInput,
) (*domain.Batch, error) {
	start := time.Now()
	batch, err := c.next.GenerateBatch(ctx, input)
	c.record(ctx, "batch_generate", start, err)
	if err == nil && batch != nil {
		c.metrics.RecordCardsGenerated(ctx, batch.Brand.Name, string(batch.Mode), len(batch.Cards))
		if batch.Metadata.Source != "" {
			c.metrics.RecordBinLookup(ctx, batch.Metadata.Source)
		}
	}
	return batch, err
}

// LookupBin records metrics for BIN lookups.
func (c *cardUseCaseWithMetrics) LookupBin(ctx context.Context, bin string) (*domain.BinMetadata, error) {
	start := time.Now()
	metadata, err := c.next.LookupBin(ctx, bin)
	c.record(ctx, "bin_lookup", start, err)
	if err == nil && metadata != nil {
		c.metrics.RecordBinLookup(ctx, metadata.Source)
	}
	return metadata, err
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
