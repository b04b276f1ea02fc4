package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/metadata"
)

// FetchTitle godoc
// @Summary     Fetch a page title
// @Description Scrapes the title of a web page. Unreachable pages answer 200 with the domain as title.
// @Tags        Scraping
// @Produce     json
// @Param       url query string true "Page URL (scheme optional, https assumed)"
// @Success     200 {object} titleResp
// @Failure     400 {object} errorResp "Missing or invalid url"
// @Router      /api/fetch-title [GET]
func (h *handler) FetchTitle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFetchReq(c)
	if err != nil {
		h.abort(c, metadata.ErrInvalidURL)
		return
	}

	out, err := h.uc.FetchTitle(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.FetchTitle: %v", err)
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newTitleResp(out))
}

// FetchMeta godoc
// @Summary     Fetch page metadata
// @Description Scrapes title, description and preview image of a web page with a domain fallback.
// @Tags        Scraping
// @Produce     json
// @Param       url query string true "Page URL (scheme optional, https assumed)"
// @Success     200 {object} metaResp
// @Failure     400 {object} errorResp "Missing or invalid url"
// @Router      /api/fetch-meta [GET]
func (h *handler) FetchMeta(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFetchReq(c)
	if err != nil {
		h.abort(c, metadata.ErrInvalidURL)
		return
	}

	out, err := h.uc.FetchMeta(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.FetchMeta: %v", err)
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newMetaResp(out))
}
