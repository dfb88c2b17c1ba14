package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifeplanner/internal/event"
	"lifeplanner/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// are hidden behind a generic 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, event.ErrEmptyInput),
		errors.Is(err, event.ErrInvalidCategory),
		errors.Is(err, event.ErrInvalidAction):
		response.Error(c, err)

	case errors.Is(err, event.ErrNoEventsExtracted):
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, err)

	case errors.Is(err, event.ErrNoConflicts):
		response.NotFound(c, err)

	case errors.Is(err, event.ErrNotConflicting):
		response.ErrorWithStatus(c, http.StatusConflict, err)

	case errors.Is(err, event.ErrAnalysisFailed):
		response.ErrorWithStatus(c, http.StatusBadGateway, err)

	default:
		response.InternalError(c, err)
	}
}
