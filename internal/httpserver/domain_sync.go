package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/bookmark"
	syncHTTP "bookmark-manager/internal/sync/delivery/http"
	syncUC "bookmark-manager/internal/sync/usecase"
)

// setupSyncDomain registers /api/v1/sync. The routes exist even without a
// remote backend so clients get a clear 503 instead of a 404.
func (srv HTTPServer) setupSyncDomain(ctx context.Context, v1 *gin.RouterGroup, library bookmark.UseCase) {
	uc := syncUC.New(srv.l, srv.remote, library, srv.metrics)
	h := syncHTTP.New(srv.l, uc)
	syncHTTP.RegisterRoutes(v1, h)

	if !uc.Enabled() {
		srv.l.Infof(ctx, "Sync backend not configured, /api/v1/sync answers 503")
		return
	}
	srv.l.Infof(ctx, "Sync domain registered for user %s", srv.remote.UserID())
}
