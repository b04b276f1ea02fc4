package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	mediaHTTP "bookmark-manager/internal/media/delivery/http"
	mediaUC "bookmark-manager/internal/media/usecase"
)

func (srv HTTPServer) setupMediaDomain(ctx context.Context, api *gin.RouterGroup) {
	uc := mediaUC.New(srv.l, srv.fetcher, srv.guard, srv.shots, srv.metrics, srv.mediaCfg)
	h := mediaHTTP.New(srv.l, uc)
	mediaHTTP.RegisterRoutes(api, h)

	if srv.shots == nil {
		srv.l.Infof(ctx, "Media domain registered, screenshots fall back to placeholders")
		return
	}
	srv.l.Infof(ctx, "Media domain registered")
}
