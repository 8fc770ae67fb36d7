// Package http exposes the bot dispatcher over HTTP so other chat transports
// can relay messages.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/binbot/internal/bot"
	"github.com/allisson/binbot/internal/bot/http/dto"
	"github.com/allisson/binbot/internal/httputil"
	customValidation "github.com/allisson/binbot/internal/validation"
)

// MessageHandler answers a relayed chat message.
type MessageHandler interface {
	Handle(ctx context.Context, msg bot.Message) bot.Reply
}

// WebhookHandler handles the bot webhook endpoint.
type WebhookHandler struct {
	dispatcher MessageHandler
	logger     *slog.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(dispatcher MessageHandler, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// MessageHandler dispatches one message and returns the reply.
// POST /v1/bot/messages
func (h *WebhookHandler) MessageHandler(c *gin.Context) {
	var req dto.MessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	reply := h.dispatcher.Handle(c.Request.Context(), req.ToMessage())
	c.JSON(http.StatusOK, dto.MapReplyToResponse(reply))
}
