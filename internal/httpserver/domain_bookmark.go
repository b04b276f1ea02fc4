package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/bookmark"
	bookmarkHTTP "bookmark-manager/internal/bookmark/delivery/http"
	bookmarkRepo "bookmark-manager/internal/bookmark/repository/sqlite"
	bookmarkUC "bookmark-manager/internal/bookmark/usecase"
	"bookmark-manager/internal/metadata"
)

// setupBookmarkDomain wires repository, UseCase and handler for the library API.
func (srv HTTPServer) setupBookmarkDomain(ctx context.Context, v1 *gin.RouterGroup, meta metadata.UseCase) bookmark.UseCase {
	// 1. Repository
	repo := bookmarkRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := bookmarkUC.New(srv.l, repo, meta, srv.seed, srv.metrics, srv.bookmarkCfg)

	// 3. HTTP Handler
	h := bookmarkHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/categories, /api/v1/bookmarks, /api/v1/export ...
	bookmarkHTTP.RegisterRoutes(v1, h)

	srv.l.Infof(ctx, "Bookmark domain registered")
	return uc
}
