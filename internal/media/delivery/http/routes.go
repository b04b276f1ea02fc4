package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the image endpoints, normally on /api.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/proxy-image", h.ProxyImage)
	rg.GET("/screenshot", h.Screenshot)
}
