package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apperrors "github.com/allisson/binbot/internal/errors"
)

// Operation status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// durationBuckets covers local generation (sub-millisecond) up to BIN lookups
// that exhaust every retry pass.
var durationBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30}

// BusinessMetrics records use case activity.
type BusinessMetrics interface {
	// RecordOperation counts one call of operation ("card_generate",
	// "note_save", "bot_handle") in domain ("cards", "notes", "bot").
	RecordOperation(ctx context.Context, domain, operation, status string)
	// RecordDuration observes how long the call took.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
	// RecordCardsGenerated counts lines produced for a brand and mode.
	RecordCardsGenerated(ctx context.Context, brand, mode string, count int)
	// RecordBinLookup counts metadata answers by source: a remote provider
	// name or "local" when the classifier fallback was used.
	RecordBinLookup(ctx context.Context, source string)
}

type otelBusinessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
	cards      metric.Int64Counter
	lookups    metric.Int64Counter
}

// NewBusinessMetrics creates the instruments on a meter named namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)
	b := &otelBusinessMetrics{}

	var err error
	if b.operations, err = meter.Int64Counter(
		namespace+"_operations_total",
		metric.WithDescription("Use case calls by domain, operation and status"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, apperrors.Wrap(err, "failed to create operation counter")
	}
	if b.durations, err = meter.Float64Histogram(
		namespace+"_operation_duration_seconds",
		metric.WithDescription("Use case call duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	); err != nil {
		return nil, apperrors.Wrap(err, "failed to create duration histogram")
	}
	if b.cards, err = meter.Int64Counter(
		namespace+"_cards_generated_total",
		metric.WithDescription("Generated card lines by brand and mode"),
		metric.WithUnit("{card}"),
	); err != nil {
		return nil, apperrors.Wrap(err, "failed to create cards counter")
	}
	if b.lookups, err = meter.Int64Counter(
		namespace+"_bin_lookups_total",
		metric.WithDescription("BIN metadata answers by source"),
		metric.WithUnit("{lookup}"),
	); err != nil {
		return nil, apperrors.Wrap(err, "failed to create bin lookup counter")
	}

	return b, nil
}

func operationAttrs(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *otelBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationAttrs(domain, operation, status))
}

func (b *otelBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), operationAttrs(domain, operation, status))
}

func (b *otelBusinessMetrics) RecordCardsGenerated(ctx context.Context, brand, mode string, count int) {
	if count <= 0 {
		return
	}
	b.cards.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("brand", brand),
		attribute.String("mode", mode),
	))
}

func (b *otelBusinessMetrics) RecordBinLookup(ctx context.Context, source string) {
	b.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

// NoOpBusinessMetrics discards everything. It is used when metrics are
// disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics returns a NoOpBusinessMetrics.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return NoOpBusinessMetrics{}
}

func (NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (NoOpBusinessMetrics) RecordCardsGenerated(context.Context, string, string, int) {}

func (NoOpBusinessMetrics) RecordBinLookup(context.Context, string) {}
