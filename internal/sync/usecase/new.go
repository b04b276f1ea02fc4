package usecase

import (
	"context"
	"encoding/json"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/pkg/log"
	"bookmark-manager/pkg/metrics"
	"bookmark-manager/pkg/remote"
)

// Remote is the hosted snapshot store.
type Remote interface {
	Enabled() bool
	UserID() string
	Push(ctx context.Context, data json.RawMessage) (remote.Snapshot, error)
	Pull(ctx context.Context) (remote.Snapshot, error)
}

type implUseCase struct {
	l       log.Logger
	remote  Remote
	library bookmark.UseCase
	metrics *metrics.Metrics
}

// New creates a sync UseCase. m may be nil.
func New(l log.Logger, r Remote, library bookmark.UseCase, m *metrics.Metrics) *implUseCase {
	return &implUseCase{
		l:       l,
		remote:  r,
		library: library,
		metrics: m,
	}
}
