package http

import (
	"github.com/gin-gonic/gin"

	"familybridge/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sync := rg.Group("/sync", mw.Auth())
	{
		sync.POST("", h.Connect)
		sync.GET("", h.List)
		sync.PATCH("/:syncId/settings", h.UpdateSettings)
	}
}
