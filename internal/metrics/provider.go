// Package metrics exports OpenTelemetry instruments in Prometheus format.
// Card, note and bot use cases record through BusinessMetrics; the HTTP
// router records through HTTPMetricsMiddleware.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	apperrors "github.com/allisson/binbot/internal/errors"
)

// Provider owns the meter provider and the Prometheus registry it exports to.
// Go runtime and process collectors share the registry.
type Provider struct {
	namespace     string
	registry      *prometheus.Registry
	meterProvider *sdkmetric.MeterProvider
}

// NewProvider creates a Provider whose instruments are prefixed with
// namespace ("binbot").
func NewProvider(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, apperrors.Wrap(err, "failed to register go collector")
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, apperrors.Wrap(err, "failed to register process collector")
	}

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create prometheus exporter")
	}

	return &Provider{
		namespace: namespace,
		registry:  registry,
		meterProvider: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(exporter),
			sdkmetric.WithResource(resource.NewSchemaless(attribute.String("service.name", namespace))),
		),
	}, nil
}

// Namespace returns the metric name prefix.
func (p *Provider) Namespace() string {
	return p.namespace
}

// MeterProvider returns the underlying meter provider.
func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.meterProvider
}

// Handler serves the registry for Prometheus scraping.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
