package http

import (
	"errors"
	"net/http"

	"bookmark-manager/internal/bookmark"
	pkgErrors "bookmark-manager/pkg/errors"
)

var (
	errMissingID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errBodyTooBig  = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, bookmark.ErrCategoryNotFound),
		errors.Is(err, bookmark.ErrSubCategoryNotFound),
		errors.Is(err, bookmark.ErrBookmarkNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, bookmark.ErrDuplicateURL),
		errors.Is(err, bookmark.ErrEnhanceRunning):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, bookmark.ErrInvalidURL),
		errors.Is(err, bookmark.ErrInvalidName),
		errors.Is(err, bookmark.ErrInvalidTitle),
		errors.Is(err, bookmark.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// isClientError reports whether err is a known domain error, which is logged
// at warn level instead of error.
func isClientError(err error) bool {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	return httpErr.StatusCode < http.StatusInternalServerError
}
