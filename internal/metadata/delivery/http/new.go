package http

import (
	"bookmark-manager/internal/metadata"
	"bookmark-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc metadata.UseCase
}

// New creates a new HTTP handler for the metadata endpoints.
func New(l log.Logger, uc metadata.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
