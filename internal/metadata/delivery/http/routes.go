package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the scraping endpoints, normally on /api.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/fetch-title", h.FetchTitle)
	rg.GET("/fetch-meta", h.FetchMeta)
}
