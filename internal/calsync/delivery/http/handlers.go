package http

import (
	"github.com/gin-gonic/gin"

	"familybridge/pkg/response"
	"familybridge/pkg/scope"
)

// Connect godoc
// @Summary     Connect an external calendar
// @Description Stores a google, apple (CalDAV) or outlook connection for the caller and pushes their upcoming events to it.
// @Tags        Calendar Sync
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body connectReq true "Connection data"
// @Success     201  {object} connectResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     502  {object} response.Resp "Provider unavailable"
// @Router      /api/v1/sync [POST]
func (h *handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processConnectReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Connect(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Connect: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, connectResp{connectionResp: newConnectionResp(output.Connection), Synced: output.Synced})
}

// List godoc
// @Summary     List external calendar connections
// @Description Returns the caller's connections. Credentials are never returned.
// @Tags        Calendar Sync
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/sync [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Debugf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// UpdateSettings godoc
// @Summary     Update connection settings
// @Description Merges direction, event types and frequency, and toggles syncEnabled.
// @Tags        Calendar Sync
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       syncId path string            true "Connection ID"
// @Param       body   body updateSettingsReq true "Settings"
// @Success     200    {object} connectionResp
// @Failure     400    {object} response.Resp "Bad Request"
// @Failure     404    {object} response.Resp "Not Found"
// @Router      /api/v1/sync/{syncId}/settings [PATCH]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processUpdateSettingsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateSettings(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.UpdateSettings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConnectionResp(output.Connection))
}
