package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/media"
)

// ProxyImage godoc
// @Summary     Proxy an image
// @Description Streams a remote image through the server. Internal hosts are refused. When the image cannot be fetched the site favicon is served instead.
// @Tags        Scraping
// @Produce     image/png,image/jpeg,image/gif,image/webp,image/svg+xml
// @Param       url query string false "Image URL"
// @Param       src query string false "Alias of url"
// @Success     200 {file}   binary
// @Failure     400 {object} errorResp "Missing or invalid url"
// @Failure     403 {object} errorResp "Host not allowed"
// @Failure     502 {object} errorResp "Image and favicon both unavailable"
// @Router      /api/proxy-image [GET]
func (h *handler) ProxyImage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProxyImageReq(c)
	if err != nil {
		h.abort(c, media.ErrInvalidURL)
		return
	}

	out, err := h.uc.ProxyImage(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ProxyImage: %v", err)
		h.abort(c, err)
		return
	}
	defer out.Body.Close()

	length := out.Length
	if length <= 0 {
		length = -1
	}
	c.DataFromReader(http.StatusOK, length, out.ContentType, out.Body, map[string]string{
		"Cache-Control":          cacheLongLived,
		"X-Content-Type-Options": "nosniff",
		headerImageSource:        out.Source,
	})
}

// Screenshot godoc
// @Summary     Page screenshot
// @Description Returns a screenshot from the hosted service or headless Chrome, or a generated SVG placeholder.
// @Tags        Scraping
// @Produce     image/png,image/svg+xml
// @Param       url query string true "Page URL"
// @Success     200 {file}   binary
// @Failure     400 {object} errorResp "Missing or invalid url"
// @Router      /api/screenshot [GET]
func (h *handler) Screenshot(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScreenshotReq(c)
	if err != nil {
		h.abort(c, media.ErrInvalidURL)
		return
	}

	out, err := h.uc.Screenshot(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Screenshot: %v", err)
		h.abort(c, err)
		return
	}

	cacheControl := cacheLongLived
	if out.Placeholder {
		cacheControl = cachePlaceholder
	}
	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, out.ContentType, out.Body)
}
