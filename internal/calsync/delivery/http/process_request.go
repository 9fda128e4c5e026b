package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "familybridge/pkg/errors"
)

func (h *handler) processConnectReq(c *gin.Context) (connectReq, error) {
	var req connectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

func (h *handler) processUpdateSettingsReq(c *gin.Context) (updateSettingsReq, error) {
	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	req.ID = c.Param("syncId")
	return req, nil
}
