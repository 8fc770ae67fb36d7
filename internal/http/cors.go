package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// createCORSMiddleware returns nil when CORS is off or the origin list leaves
// nothing usable. The API serves the bot gateway and scripts, so CORS is off
// unless CORS_ENABLED is set.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins)
	if len(origins) == 0 {
		logger.Warn("cors enabled without origins, not applied")
		return nil
	}

	cfg := corsConfig(origins)
	if err := cfg.Validate(); err != nil {
		logger.Warn("cors origins rejected, not applied", slog.Any("origins", origins), slog.Any("error", err))
		return nil
	}

	logger.Info("cors enabled", slog.Any("origins", origins))
	return cors.New(cfg)
}

// corsConfig allows the methods and headers the /v1 routes use. Admin calls
// authenticate with a header key, never cookies, so credentials stay off. A
// "*" entry opens every origin.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-API-Key"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

// parseOrigins splits a comma-separated list, dropping blanks.
func parseOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
