package http

import (
	"errors"
	"net/http"

	"familybridge/internal/calsync"
	pkgErrors "familybridge/pkg/errors"
)

var (
	errConnectionNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "calendar sync connection not found")
	errInvalidCredentials  = pkgErrors.NewHTTPError(http.StatusBadRequest, "provider rejected the credentials")
	errProviderUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, "calendar provider unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calsync.ErrConnectionNotFound):
		return errConnectionNotFound
	case errors.Is(err, calsync.ErrInvalidPayload):
		return pkgErrors.NewValidationError(err)
	case errors.Is(err, calsync.ErrTokenRefresh):
		return errInvalidCredentials
	case errors.Is(err, calsync.ErrProviderUnavailable):
		return errProviderUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
