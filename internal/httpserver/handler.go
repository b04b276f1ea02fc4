package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookmark-manager/internal/middleware"
	"bookmark-manager/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() middleware.Middleware {
	mw := middleware.New(srv.l, srv.middleware, srv.metrics)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID(), mw.Logger(), mw.Metrics(), mw.CORS())

	ctx := context.Background()
	if model.Environment(srv.environment).IsProduction() {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.middleware.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
	return mw
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
// Scraping endpoints live on /api, the library API on /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api", mw.RateLimit())
	v1 := srv.gin.Group("/api/v1")

	meta := srv.setupMetadataDomain(ctx, api)
	srv.setupMediaDomain(ctx, api)
	library := srv.setupBookmarkDomain(ctx, v1, meta)
	srv.setupSyncDomain(ctx, v1, library)

	return nil
}
