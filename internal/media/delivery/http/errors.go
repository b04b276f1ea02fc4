package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/media"
	pkgErrors "bookmark-manager/pkg/errors"
)

func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, media.ErrMissingURL):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "url is required")
	case errors.Is(err, media.ErrInvalidURL):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid url")
	case errors.Is(err, media.ErrBlockedHost):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "host not allowed")
	case errors.Is(err, media.ErrUpstream):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "failed to fetch image")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func (h *handler) abort(c *gin.Context, err error) {
	httpErr := h.mapError(err)
	c.AbortWithStatusJSON(httpErr.StatusCode, errorResp{Error: httpErr.Message})
}
