package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/metadata"
	metadataHTTP "bookmark-manager/internal/metadata/delivery/http"
	metadataUC "bookmark-manager/internal/metadata/usecase"
)

// setupMetadataDomain registers /api/fetch-title and /api/fetch-meta.
// The UseCase is returned so enhancement can reuse the same cache.
func (srv HTTPServer) setupMetadataDomain(ctx context.Context, api *gin.RouterGroup) metadata.UseCase {
	uc := metadataUC.New(srv.l, srv.fetcher, srv.cache, srv.metrics, srv.metadataCfg)
	h := metadataHTTP.New(srv.l, uc)
	metadataHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Metadata domain registered")
	return uc
}
