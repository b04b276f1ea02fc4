package usecase

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/internal/metadata"
	"bookmark-manager/pkg/log"
	"bookmark-manager/pkg/metrics"
	"bookmark-manager/pkg/seed"
)

const (
	defaultFaviconEndpoint = "https://www.google.com/s2/favicons"
	defaultProxyPath       = "/api/proxy-image"
	defaultListLimit       = 100
	maxListLimit           = 1000
)

// Config tunes enhancement. Zero values take the defaults.
type Config struct {
	// RatePerSec paces batch enhancement. Default 1.
	RatePerSec float64
	// FaviconEndpoint receives domain and sz query parameters.
	FaviconEndpoint string
	// ProxyPath is the image proxy route used to build favicon cover images.
	ProxyPath string
}

type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	meta    metadata.UseCase
	seed    *seed.Dataset
	metrics *metrics.Metrics
	limiter *rate.Limiter
	cfg     Config

	enhancing atomic.Bool
	// onBatchDone is called after a background batch finishes.
	onBatchDone func(bookmark.EnhanceSummary)
}

// New creates a new bookmark UseCase. meta, dataset and m may be nil.
func New(
	l log.Logger,
	repo repository.Repository,
	meta metadata.UseCase,
	dataset *seed.Dataset,
	m *metrics.Metrics,
	cfg Config,
) *implUseCase {
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 1
	}
	if cfg.FaviconEndpoint == "" {
		cfg.FaviconEndpoint = defaultFaviconEndpoint
	}
	if cfg.ProxyPath == "" {
		cfg.ProxyPath = defaultProxyPath
	}
	if dataset == nil {
		dataset = seed.Empty()
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		meta:    meta,
		seed:    dataset,
		metrics: m,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		cfg:     cfg,
	}
}
