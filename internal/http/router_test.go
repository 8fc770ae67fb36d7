package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authService "github.com/allisson/binbot/internal/auth/service/mocks"
	"github.com/allisson/binbot/internal/bot"
	botHTTP "github.com/allisson/binbot/internal/bot/http"
	cardDomain "github.com/allisson/binbot/internal/card/domain"
	cardHTTP "github.com/allisson/binbot/internal/card/http"
	cardMocks "github.com/allisson/binbot/internal/card/usecase/mocks"
	"github.com/allisson/binbot/internal/config"
	"github.com/allisson/binbot/internal/metrics"
	notesDomain "github.com/allisson/binbot/internal/notes/domain"
	notesHTTP "github.com/allisson/binbot/internal/notes/http"
	notesMocks "github.com/allisson/binbot/internal/notes/usecase/mocks"
	"github.com/allisson/binbot/internal/ratelimit"
)

type stubDispatcher struct {
	reply    bot.Reply
	received []bot.Message
}

func (s *stubDispatcher) Handle(_ context.Context, msg bot.Message) bot.Reply {
	s.received = append(s.received, msg)
	return s.reply
}

type routerFixture struct {
	server     *Server
	cards      *cardMocks.MockCardUseCase
	notes      *notesMocks.MockNoteUseCase
	secrets    *authService.MockSecretService
	dispatcher *stubDispatcher
}

func newRouterFixture(t *testing.T, limiter *ratelimit.Limiter) *routerFixture {
	t.Helper()
	return buildRouterFixture(limiter, nil)
}

func buildRouterFixture(limiter *ratelimit.Limiter, provider *metrics.Provider) *routerFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := &routerFixture{
		server:     NewServer(nil, "localhost", 8080, logger),
		cards:      &cardMocks.MockCardUseCase{},
		notes:      &notesMocks.MockNoteUseCase{},
		secrets:    &authService.MockSecretService{},
		dispatcher: &stubDispatcher{reply: bot.Reply{Text: "pong"}},
	}

	cfg := &config.Config{APIKeyHash: "stored-hash", MetricsNamespace: "test"}
	fx.server.SetupRouter(
		cfg,
		cardHTTP.NewCardHandler(fx.cards, 100, logger),
		notesHTTP.NewNoteHandler(fx.notes, logger),
		botHTTP.NewWebhookHandler(fx.dispatcher, logger),
		fx.secrets,
		provider,
		limiter,
	)
	return fx
}

func (fx *routerFixture) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	fx.server.GetHandler().ServeHTTP(w, req)
	return w
}

func TestSetupRouter_PublicRoutes(t *testing.T) {
	t.Run("Success_Brand", func(t *testing.T) {
		fx := newRouterFixture(t, nil)
		fx.cards.On("ClassifyBrand", mock.Anything, "4111").
			Return(cardDomain.BrandRule{Name: "visa", DisplayName: "Visa", TotalLength: 16, CVVLength: 3}).
			Once()

		w := fx.do(http.MethodGet, "/v1/brands/4111", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		fx.cards.AssertExpectations(t)
	})

	t.Run("Success_ListNotes", func(t *testing.T) {
		fx := newRouterFixture(t, nil)
		fx.notes.On("List", mock.Anything, 0, 50).Return([]string{"promo"}, nil).Once()

		w := fx.do(http.MethodGet, "/v1/notes", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"titles":["promo"]}`, w.Body.String())
	})

	t.Run("Success_Health", func(t *testing.T) {
		fx := newRouterFixture(t, nil)

		w := fx.do(http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSetupRouter_AdminRoutes(t *testing.T) {
	t.Run("Error_SaveWithoutKey", func(t *testing.T) {
		fx := newRouterFixture(t, nil)

		w := fx.do(http.MethodPut, "/v1/notes/promo", `{"content":"x"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		fx.notes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_WebhookWithWrongKey", func(t *testing.T) {
		fx := newRouterFixture(t, nil)
		fx.secrets.On("CompareSecret", "bbk_wrong", "stored-hash").Return(false).Once()

		w := fx.do(http.MethodPost, "/v1/bot/messages", `{}`, map[string]string{"X-API-Key": "bbk_wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success_DeleteWithKey", func(t *testing.T) {
		fx := newRouterFixture(t, nil)
		fx.secrets.On("CompareSecret", "bbk_good", "stored-hash").Return(true).Once()
		fx.notes.On("Delete", mock.Anything, "promo").Return(nil).Once()

		w := fx.do(http.MethodDelete, "/v1/notes/promo", "", map[string]string{"X-API-Key": "bbk_good"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		fx.notes.AssertExpectations(t)
	})

	t.Run("Success_SaveWithBearer", func(t *testing.T) {
		fx := newRouterFixture(t, nil)
		fx.secrets.On("CompareSecret", "bbk_good", "stored-hash").Return(true).Once()
		fx.notes.On("Save", mock.Anything, "promo", "text").
			Return(&notesDomain.Note{Title: "promo", Content: "text"}, nil).
			Once()

		w := fx.do(
			http.MethodPut,
			"/v1/notes/promo",
			`{"content":"text"}`,
			map[string]string{"Authorization": "Bearer bbk_good"},
		)

		assert.Equal(t, http.StatusOK, w.Code)
		fx.notes.AssertExpectations(t)
	})

	t.Run("Success_WebhookWithKey", func(t *testing.T) {
		fx := newRouterFixture(t, nil)
		fx.secrets.On("CompareSecret", "bbk_good", "stored-hash").Return(true).Once()

		w := fx.do(
			http.MethodPost,
			"/v1/bot/messages",
			`{"chat_id":"1","chat_type":"private","user_id":"1","text":"/start"}`,
			map[string]string{"X-API-Key": "bbk_good"},
		)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"text":"pong","markdown":false}`, w.Body.String())
	})
}

func TestSetupRouter_RateLimit(t *testing.T) {
	limiter := ratelimit.New(1, 1)
	defer limiter.Close()

	fx := newRouterFixture(t, limiter)
	fx.cards.On("ClassifyBrand", mock.Anything, "5").Return(cardDomain.BrandRule{Name: "mastercard"})

	first := fx.do(http.MethodGet, "/v1/brands/5", "", nil)
	second := fx.do(http.MethodGet, "/v1/brands/5", "", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	// Health checks are outside /v1 and never limited.
	health := fx.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestReadinessHandler_Ready(t *testing.T) {
	db, mockDB, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mockDB.ExpectPing()

	server := NewServer(db, "localhost", 8080, slog.New(slog.NewTextHandler(io.Discard, nil)))

	w := httptest.NewRecorder()
	c, _ := newTestGinContext(w, "/ready")
	server.readinessHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready","components":{"database":"ok"}}`, w.Body.String())
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestReadinessHandler_PingFails(t *testing.T) {
	db, mockDB, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mockDB.ExpectPing().WillReturnError(assert.AnError)

	server := NewServer(db, "localhost", 8080, slog.New(slog.NewTextHandler(io.Discard, nil)))

	w := httptest.NewRecorder()
	c, _ := newTestGinContext(w, "/ready")
	server.readinessHandler(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRateLimitMiddleware_RetryAfterRoundsUp(t *testing.T) {
	limiter := ratelimit.NewCooldown(1500 * time.Millisecond)
	defer limiter.Close()

	fx := newRouterFixture(t, limiter)
	fx.cards.On("ClassifyBrand", mock.Anything, "4").Return(cardDomain.BrandRule{Name: "visa"})

	_ = fx.do(http.MethodGet, "/v1/brands/4", "", nil)
	w := fx.do(http.MethodGet, "/v1/brands/4", "", nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
}
