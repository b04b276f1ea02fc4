package usecase

import (
	"context"
	"time"

	"bookmark-manager/pkg/cache"
	"bookmark-manager/pkg/fetcher"
	"bookmark-manager/pkg/log"
	"bookmark-manager/pkg/metrics"
)

// PageFetcher downloads HTML pages.
type PageFetcher interface {
	FetchPage(ctx context.Context, rawURL string) (fetcher.Page, error)
}

// Config holds per-endpoint timeouts and cache lifetime.
type Config struct {
	TitleTimeout time.Duration
	MetaTimeout  time.Duration
	CacheTTL     time.Duration
}

type implUseCase struct {
	l       log.Logger
	fetcher PageFetcher
	cache   cache.Cache
	metrics *metrics.Metrics
	cfg     Config
}

// New creates a metadata UseCase. cache and m may be nil.
func New(l log.Logger, f PageFetcher, c cache.Cache, m *metrics.Metrics, cfg Config) *implUseCase {
	if cfg.TitleTimeout <= 0 {
		cfg.TitleTimeout = 5 * time.Second
	}
	if cfg.MetaTimeout <= 0 {
		cfg.MetaTimeout = 7 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return &implUseCase{
		l:       l,
		fetcher: f,
		cache:   c,
		metrics: m,
		cfg:     cfg,
	}
}
