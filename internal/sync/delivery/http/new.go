package http

import (
	"bookmark-manager/internal/sync"
	"bookmark-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc sync.UseCase
}

// New creates a new HTTP handler for the sync endpoints.
func New(l log.Logger, uc sync.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
