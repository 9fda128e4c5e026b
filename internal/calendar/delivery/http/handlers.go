package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familybridge/internal/calendar"
	"familybridge/pkg/response"
	"familybridge/pkg/scope"
)

// CreateEvent godoc
// @Summary     Create an event
// @Description Creates an event after checking every participant for double-booking. Boundaries are inclusive.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Event data"
// @Success     201  {object} eventResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     409  {object} response.ConflictResp "Schedule conflict detected"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateEvent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.CreateEvent: %v", err)
		h.writeError(c, err)
		return
	}

	response.Created(c, newEventResp(output.Event))
}

// ListEvents godoc
// @Summary     List events
// @Description Returns the events overlapping the window, grouped by hour (day), weekday (week) or day of month (month).
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       startDate    query string false "Window start (RFC 3339)"
// @Param       endDate      query string false "Window end (RFC 3339)"
// @Param       participants query string false "Comma-separated participant ids"
// @Param       type         query string false "Event type"
// @Param       status       query string false "Event status"
// @Param       view         query string false "day, week, month (default) or list"
// @Param       expand       query bool   false "Expand recurring events inside the window"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListEvents(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.ListEvents: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListResp(output, req.Expand))
}

// CheckConflicts godoc
// @Summary     Check a slot for conflicts
// @Description Runs the conflict detector without writing anything.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       startTime    query string true  "Slot start (RFC 3339)"
// @Param       endTime      query string true  "Slot end (RFC 3339)"
// @Param       participants query string false "Comma-separated participant ids"
// @Param       excludeId    query string false "Event id to ignore"
// @Success     200 {object} checkConflictsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/conflicts [GET]
func (h *handler) CheckConflicts(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processConflictsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CheckConflicts(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.CheckConflicts: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newCheckConflictsResp(output))
}

// ExportEvents godoc
// @Summary     Export events as iCalendar
// @Tags        Calendar
// @Produce     text/calendar
// @Security    BearerAuth
// @Param       startDate    query string false "Window start (RFC 3339)"
// @Param       endDate      query string false "Window end (RFC 3339)"
// @Param       participants query string false "Comma-separated participant ids"
// @Param       type         query string false "Event type"
// @Success     200 {string} string "VCALENDAR document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/export.ics [GET]
func (h *handler) ExportEvents(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportEvents(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.ExportEvents: %v", err)
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Data)
}

// DetailEvent godoc
// @Summary     Get event detail
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       eventId path string true "Event ID"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{eventId} [GET]
func (h *handler) DetailEvent(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	output, err := h.uc.DetailEvent(ctx, sc, c.Param("eventId"))
	if err != nil {
		h.l.Debugf(ctx, "uc.DetailEvent: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newEventResp(output.Event))
}

// UpdateEvent godoc
// @Summary     Update an event
// @Description Partial update. Time or participant changes re-run the conflict check with the event itself excluded.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       eventId path string    true "Event ID"
// @Param       body    body updateReq true "Fields to change"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.ConflictResp "Schedule conflict detected"
// @Router      /api/v1/events/{eventId} [PATCH]
func (h *handler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateEvent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.UpdateEvent: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newEventResp(output.Event))
}

// CancelEvent godoc
// @Summary     Cancel an event
// @Description Marks the event cancelled, cancels its transportation and removes external copies.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       eventId path string true "Event ID"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{eventId} [DELETE]
func (h *handler) CancelEvent(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	output, err := h.uc.CancelEvent(ctx, sc, c.Param("eventId"))
	if err != nil {
		h.l.Debugf(ctx, "uc.CancelEvent: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newEventResp(output.Event))
}

// CreateTransportation godoc
// @Summary     Attach transportation to an event
// @Tags        Transportation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       eventId path string            true "Event ID"
// @Param       body    body transportationReq true "Transportation details"
// @Success     201 {object} transportationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Event not found"
// @Failure     409 {object} response.Resp "Transportation already exists"
// @Router      /api/v1/events/{eventId}/transportation [POST]
func (h *handler) CreateTransportation(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processTransportationReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateTransportation(ctx, sc, calendar.CreateTransportationInput{
		EventID:             c.Param("eventId"),
		TransportationInput: *req.toInput(),
	})
	if err != nil {
		h.l.Debugf(ctx, "uc.CreateTransportation: %v", err)
		h.writeError(c, err)
		return
	}

	response.Created(c, newTransportationResp(output.Transportation))
}

// UpdateTransportationStatus godoc
// @Summary     Update transportation status
// @Description Any known status may follow any other.
// @Tags        Transportation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       transportationId path string                  true "Transportation ID"
// @Param       body             body transportationStatusReq true "New status"
// @Success     200 {object} transportationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/transportation/{transportationId}/status [PATCH]
func (h *handler) UpdateTransportationStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processTransportationStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateTransportationStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.UpdateTransportationStatus: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newTransportationResp(output.Transportation))
}
