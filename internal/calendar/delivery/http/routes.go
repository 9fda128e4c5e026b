package http

import (
	"github.com/gin-gonic/gin"

	"familybridge/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route requires a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.Auth())
	{
		events.POST("", h.CreateEvent)
		events.GET("", h.ListEvents)
		events.GET("/conflicts", h.CheckConflicts)
		events.GET("/export.ics", h.ExportEvents)
		events.GET("/:eventId", h.DetailEvent)
		events.PATCH("/:eventId", h.UpdateEvent)
		events.DELETE("/:eventId", h.CancelEvent)
		events.POST("/:eventId/transportation", h.CreateTransportation)
	}

	transportation := rg.Group("/transportation", mw.Auth())
	{
		transportation.PATCH("/:transportationId/status", h.UpdateTransportationStatus)
	}
}
