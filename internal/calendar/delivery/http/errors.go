package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"familybridge/internal/calendar"
	pkgErrors "familybridge/pkg/errors"
	"familybridge/pkg/response"
)

const conflictMessage = "Schedule conflict detected"

var (
	errEventNotFound          = pkgErrors.NewHTTPError(http.StatusNotFound, "event not found")
	errTransportationNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "transportation coordination not found")
	errTransportationExists   = pkgErrors.NewHTTPError(http.StatusConflict, "transportation already exists for event")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrEventNotFound):
		return errEventNotFound
	case errors.Is(err, calendar.ErrTransportationNotFound):
		return errTransportationNotFound
	case errors.Is(err, calendar.ErrTransportationExists):
		return errTransportationExists
	case errors.Is(err, calendar.ErrInvalidTimeRange), errors.Is(err, calendar.ErrInvalidPayload):
		return pkgErrors.NewValidationError(err)
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// writeError sends the 409 conflict body for schedule conflicts and the mapped error otherwise.
func (h *handler) writeError(c *gin.Context, err error) {
	var ce *calendar.ConflictError
	if errors.As(err, &ce) {
		response.Conflict(c, conflictMessage, newConflictsResp(ce.Conflicts))
		return
	}
	response.Error(c, h.mapError(err))
}
