package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "familybridge/pkg/errors"
)

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

// processListReq binds and validates the list/export query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

func (h *handler) processConflictsReq(c *gin.Context) (conflictsReq, error) {
	var req conflictsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

// processUpdateReq binds and validates the update event request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	req.ID = c.Param("eventId")
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

func (h *handler) processTransportationReq(c *gin.Context) (transportationReq, error) {
	var req transportationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

func (h *handler) processTransportationStatusReq(c *gin.Context) (transportationStatusReq, error) {
	var req transportationStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	req.ID = c.Param("transportationId")
	return req, nil
}
