package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the sync endpoints, normally on /api/v1.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sync := rg.Group("/sync")
	{
		sync.POST("/push", h.Push)
		sync.POST("/pull", h.Pull)
	}
}
