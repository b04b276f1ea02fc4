package http

import (
	"bookmark-manager/internal/media"
	"bookmark-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc media.UseCase
}

// New creates a new HTTP handler for the image endpoints.
func New(l log.Logger, uc media.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
