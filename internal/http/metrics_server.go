package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/binbot/internal/metrics"
)

// MetricsServer exposes the Prometheus scrape endpoint on its own port, away
// from the /v1 rate limiter and CORS policy.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a MetricsServer for provider.
func NewMetricsServer(host string, port int, logger *slog.Logger, provider *metrics.Provider) *MetricsServer {
	return &MetricsServer{
		server: newHTTPServer(host, port, metricsRouter(provider)),
		logger: logger,
	}
}

// metricsRouter skips request logging: scrapers hit it every few seconds.
func metricsRouter(provider *metrics.Provider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	scrape := gin.WrapH(provider.Handler())
	router.GET("/metrics", scrape)
	router.HEAD("/metrics", scrape)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "namespace": provider.Namespace()})
	})

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *MetricsServer) Start(ctx context.Context) error {
	return listenAndServe(s.server, "metrics server", s.logger)
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
