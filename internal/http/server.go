// Package http provides the API server, its router and shared middleware.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/binbot/internal/auth/http"
	authService "github.com/allisson/binbot/internal/auth/service"
	botHTTP "github.com/allisson/binbot/internal/bot/http"
	cardHTTP "github.com/allisson/binbot/internal/card/http"
	"github.com/allisson/binbot/internal/config"
	"github.com/allisson/binbot/internal/metrics"
	notesHTTP "github.com/allisson/binbot/internal/notes/http"
	"github.com/allisson/binbot/internal/ratelimit"
)

// Server is the API HTTP server.
type Server struct {
	db     *sql.DB
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new API server. db may be nil when no database is
// configured; readiness then reports not ready.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// listenAndServe blocks until srv stops. A graceful shutdown is not an error.
func listenAndServe(srv *http.Server, name string, logger *slog.Logger) error {
	logger.Info("starting "+name, slog.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	return nil
}

// SetupRouter registers the middleware chain and every route. metricsProvider
// and ipLimiter are optional.
func (s *Server) SetupRouter(
	cfg *config.Config,
	cardHandler *cardHTTP.CardHandler,
	noteHandler *notesHTTP.NoteHandler,
	webhookHandler *botHTTP.WebhookHandler,
	secretService authService.SecretService,
	metricsProvider *metrics.Provider,
	ipLimiter *ratelimit.Limiter,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if ipLimiter != nil {
		v1.Use(RateLimitMiddleware(ipLimiter, s.logger))
	}

	adminOnly := authHTTP.APIKeyMiddleware(cfg.APIKeyHash, secretService, s.logger)

	v1.POST("/cards/generate", cardHandler.GenerateHandler)
	v1.GET("/brands/:prefix", cardHandler.BrandHandler)
	v1.GET("/bins/:bin", cardHandler.BinHandler)

	notes := v1.Group("/notes")
	{
		notes.GET("", noteHandler.ListHandler)
		notes.GET("/:title", noteHandler.GetHandler)
		notes.PUT("/:title", adminOnly, noteHandler.SaveHandler)
		notes.DELETE("/:title", adminOnly, noteHandler.DeleteHandler)
	}

	v1.POST("/bot/messages", adminOnly, webhookHandler.MessageHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router
	return listenAndServe(s.server, "http server", s.logger)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler pings the database.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
