package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "familybridge/internal/calendar/delivery/http"
	"familybridge/internal/middleware"
)

// setupCalendarDomain registers /api/v1/events and /api/v1/transportation.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := calendarHTTP.New(srv.l, srv.calendarUC)
	calendarHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}
