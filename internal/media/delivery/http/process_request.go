package http

import "github.com/gin-gonic/gin"

func (h *handler) processProxyImageReq(c *gin.Context) (proxyImageReq, error) {
	var req proxyImageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processScreenshotReq(c *gin.Context) (screenshotReq, error) {
	var req screenshotReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
