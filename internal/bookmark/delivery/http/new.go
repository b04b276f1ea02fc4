package http

import (
	"bookmark-manager/internal/bookmark"
	"bookmark-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc bookmark.UseCase
}

// New creates a new HTTP handler for the library API.
func New(l log.Logger, uc bookmark.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
