// Package http provides the admin API key middleware.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/binbot/internal/auth/service"
	apperrors "github.com/allisson/binbot/internal/errors"
	"github.com/allisson/binbot/internal/httputil"
)

// APIKeyHeader carries the admin key. "Authorization: Bearer <key>" is
// accepted too.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware admits requests whose key matches hashedKey.
//
// Error handling:
//   - No key configured on the server → 401 Unauthorized for every request
//   - Missing or malformed key → 401 Unauthorized
//   - Key that does not match the hash → 401 Unauthorized
//
// Usage:
//
//	admin := router.Group("/v1/notes")
//	admin.Use(APIKeyMiddleware(cfg.APIKeyHash, secretService, logger))
func APIKeyMiddleware(
	hashedKey string,
	secretService authService.SecretService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hashedKey == "" {
			logger.Debug("authentication failed: no api key configured")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		key, ok := extractKey(c)
		if !ok {
			logger.Debug("authentication failed: missing api key")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !secretService.CompareSecret(key, hashedKey) {
			logger.Debug("authentication failed: api key mismatch")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractKey reads X-API-Key, falling back to a case-insensitive Bearer
// Authorization header.
func extractKey(c *gin.Context) (string, bool) {
	if key := strings.TrimSpace(c.GetHeader(APIKeyHeader)); key != "" {
		return key, true
	}

	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	key := strings.TrimSpace(authHeader[len(bearerPrefix):])
	return key, key != ""
}
