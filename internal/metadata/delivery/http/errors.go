package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/metadata"
	pkgErrors "bookmark-manager/pkg/errors"
)

func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, metadata.ErrMissingURL):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "url is required")
	case errors.Is(err, metadata.ErrInvalidURL):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid url")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// abort answers with the flat {error} body these endpoints have always used.
func (h *handler) abort(c *gin.Context, err error) {
	httpErr := h.mapError(err)
	c.AbortWithStatusJSON(httpErr.StatusCode, errorResp{Error: httpErr.Message})
}
