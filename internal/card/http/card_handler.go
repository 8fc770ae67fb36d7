// Package http provides HTTP handlers for card generation, brand
// classification and BIN lookups.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/allisson/binbot/internal/card/http/dto"
	cardUseCase "github.com/allisson/binbot/internal/card/usecase"
	"github.com/allisson/binbot/internal/httputil"
	customValidation "github.com/allisson/binbot/internal/validation"
)

// CardHandler handles the card HTTP endpoints.
type CardHandler struct {
	cardUseCase cardUseCase.CardUseCase
	maxCount    int
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler. maxCount caps the batch size a
// single request may ask for.
func NewCardHandler(cardUseCase cardUseCase.CardUseCase, maxCount int, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		maxCount:    maxCount,
		logger:      logger,
	}
}

// GenerateHandler synthesizes a batch of cards from a pattern.
// POST /v1/cards/generate
func (h *CardHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateCardsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(h.maxCount); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	batch, err := h.cardUseCase.GenerateBatch(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBatchToResponse(batch))
}

// BrandHandler classifies leading card digits.
// GET /v1/brands/:prefix
func (h *CardHandler) BrandHandler(c *gin.Context) {
	prefix := c.Param("prefix")
	if err := validation.Validate(prefix, validation.Required, customValidation.Digits); err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("prefix: %w", err), h.logger)
		return
	}

	rule := h.cardUseCase.ClassifyBrand(c.Request.Context(), prefix)
	c.JSON(http.StatusOK, dto.MapBrandToResponse(rule))
}

// BinHandler resolves issuer metadata for a BIN.
// GET /v1/bins/:bin
func (h *CardHandler) BinHandler(c *gin.Context) {
	metadata, err := h.cardUseCase.LookupBin(c.Request.Context(), c.Param("bin"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, metadata)
}
