package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calsyncHTTP "familybridge/internal/calsync/delivery/http"
	"familybridge/internal/middleware"
)

// setupCalSyncDomain registers /api/v1/sync.
func (srv HTTPServer) setupCalSyncDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := calsyncHTTP.New(srv.l, srv.calsyncUC)
	calsyncHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Calendar sync domain registered")
	return nil
}
