package http

import (
	"errors"
	"net/http"

	"bookmark-manager/internal/sync"
	pkgErrors "bookmark-manager/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, sync.ErrSyncDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, sync.ErrNoSnapshot):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, sync.ErrRemoteUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, sync.ErrRemoteUnauthorized.Error())
	case errors.Is(err, sync.ErrRemote):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, sync.ErrRemote.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
