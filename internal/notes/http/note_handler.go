// Package http provides HTTP handlers for notes.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/binbot/internal/httputil"
	"github.com/allisson/binbot/internal/notes/http/dto"
	notesUseCase "github.com/allisson/binbot/internal/notes/usecase"
	customValidation "github.com/allisson/binbot/internal/validation"
)

// NoteHandler handles the notes HTTP endpoints.
type NoteHandler struct {
	noteUseCase notesUseCase.NoteUseCase
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteUseCase notesUseCase.NoteUseCase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
		logger:      logger,
	}
}

// ListHandler returns a page of note titles.
// GET /v1/notes?offset=0&limit=50
func (h *NoteHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	titles, err := h.noteUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTitlesToResponse(titles))
}

// GetHandler returns a note with its content.
// GET /v1/notes/:title
func (h *NoteHandler) GetHandler(c *gin.Context) {
	note, err := h.noteUseCase.Get(c.Request.Context(), c.Param("title"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNoteToResponse(note))
}

// SaveHandler creates or replaces a note.
// PUT /v1/notes/:title
func (h *NoteHandler) SaveHandler(c *gin.Context) {
	var req dto.SaveNoteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	note, err := h.noteUseCase.Save(c.Request.Context(), c.Param("title"), req.Content)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNoteToResponse(note))
}

// DeleteHandler removes a note.
// DELETE /v1/notes/:title
func (h *NoteHandler) DeleteHandler(c *gin.Context) {
	if err := h.noteUseCase.Delete(c.Request.Context(), c.Param("title")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
