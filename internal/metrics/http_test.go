package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsRouter(t *testing.T) (*Provider, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, _ := newBusinessMetrics(t, "binbot")

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "binbot"))
	router.GET("/v1/bins/:bin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"bin": c.Param("bin")})
	})
	router.POST("/v1/cards/generate", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation_error"})
	})
	return provider, router
}

func serve(router *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	provider, router := newMetricsRouter(t)

	require.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/bins/424242"))
	require.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/bins/45717360"))
	require.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodPost, "/v1/cards/generate"))
	require.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/wp-login.php"))

	output := scrape(t, provider)

	t.Run("Success_LabelsByRoutePattern", func(t *testing.T) {
		assertSeries(t, output, `binbot_http_requests_total`,
			`method="GET".*route="/v1/bins/:bin".*status_code="200"`, `2`)
		assert.NotContains(t, output, "/v1/bins/424242")
	})

	t.Run("Success_RecordsClientErrors", func(t *testing.T) {
		assertSeries(t, output, `binbot_http_requests_total`,
			`method="POST".*route="/v1/cards/generate".*status_code="422"`, `1`)
		assertSeries(t, output, `binbot_http_request_duration_seconds_count`,
			`route="/v1/cards/generate"`, `1`)
	})

	t.Run("Success_UnmatchedRoutesShareOneSeries", func(t *testing.T) {
		assertSeries(t, output, `binbot_http_requests_total`,
			`route="unmatched".*status_code="404"`, `1`)
		assert.NotContains(t, output, "wp-login")
	})

	t.Run("Success_InFlightReturnsToZero", func(t *testing.T) {
		assert.Regexp(t, `binbot_http_requests_in_flight(\{[^}]*\})? 0`, output)
	})
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/notes/:title", routeLabel("/v1/notes/:title"))
	assert.Equal(t, "unmatched", routeLabel(""))
}
