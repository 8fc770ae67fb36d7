package httputil

import (
	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/binbot/internal/errors"
	customValidation "github.com/allisson/binbot/internal/validation"
)

// Page window bounds for list endpoints such as GET /v1/notes.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// Page is the offset/limit window read from the query string.
type Page struct {
	Offset int `form:"offset" json:"offset"`
	Limit  int `form:"limit" json:"limit"`
}

// Validate checks the window bounds. A zero limit is rejected because an
// absent limit already defaults to DefaultPageLimit.
func (p *Page) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Offset, validation.Min(0)),
		validation.Field(&p.Limit, validation.Required, validation.Max(MaxPageLimit)),
	)
}

// ParsePagination reads offset and limit, applying the defaults. Every
// failure wraps apperrors.ErrInvalidInput.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	page := Page{Limit: DefaultPageLimit}
	if err := c.ShouldBindQuery(&page); err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, "offset and limit must be integers")
	}
	if err := page.Validate(); err != nil {
		return 0, 0, customValidation.WrapValidationError(err)
	}
	return page.Offset, page.Limit, nil
}
