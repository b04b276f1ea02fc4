package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"bookmark-manager/pkg/cache"
	"bookmark-manager/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "bookmark-manager"

	readyTimeout = 2 * time.Second
)

// healthCheck reports which optional backends this instance runs with.
// @Summary Health Check
// @Description Service identity plus the configured cache, screenshot and sync backends
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
		"components": gin.H{
			"cache":      srv.cacheKind(),
			"screenshot": srv.shots != nil,
			"sync":       srv.remote.Enabled(),
		},
	})
}

// readyCheck reports ready once the database answers a ping.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Database unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.readyCheck: %v", err)
		response.ServiceUnavailable(c, "database unavailable")
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}

func (srv HTTPServer) cacheKind() string {
	switch srv.cache.(type) {
	case nil:
		return "none"
	case *cache.Redis:
		return "redis"
	default:
		return "memory"
	}
}
