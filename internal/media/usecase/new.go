package usecase

import (
	"context"
	"net/url"
	"time"

	"bookmark-manager/pkg/fetcher"
	"bookmark-manager/pkg/log"
	"bookmark-manager/pkg/metrics"
	"bookmark-manager/pkg/screenshot"
)

// ImageFetcher opens upstream images.
type ImageFetcher interface {
	FetchImage(ctx context.Context, rawURL string) (fetcher.Image, error)
}

// HostChecker rejects URLs pointing at internal hosts before any request is
// made. Resolve also checks every address the host resolves to.
type HostChecker interface {
	CheckURL(raw string) (*url.URL, error)
	Resolve(ctx context.Context, raw string) (*url.URL, error)
}

type Config struct {
	ImageTimeout      time.Duration
	ScreenshotTimeout time.Duration
	// FaviconEndpoint is overridable for tests; it receives domain and sz query parameters.
	FaviconEndpoint string
}

const defaultFaviconEndpoint = "https://www.google.com/s2/favicons"

type implUseCase struct {
	l       log.Logger
	images  ImageFetcher
	guard   HostChecker
	shots   screenshot.Capturer
	metrics *metrics.Metrics
	cfg     Config
}

// New creates a media UseCase. shots and m may be nil.
func New(l log.Logger, images ImageFetcher, guard HostChecker, shots screenshot.Capturer, m *metrics.Metrics, cfg Config) *implUseCase {
	if cfg.ImageTimeout <= 0 {
		cfg.ImageTimeout = 7 * time.Second
	}
	if cfg.ScreenshotTimeout <= 0 {
		cfg.ScreenshotTimeout = 20 * time.Second
	}
	if cfg.FaviconEndpoint == "" {
		cfg.FaviconEndpoint = defaultFaviconEndpoint
	}
	return &implUseCase{
		l:       l,
		images:  images,
		guard:   guard,
		shots:   shots,
		metrics: m,
		cfg:     cfg,
	}
}
