package middleware

import (
	"bookmark-manager/pkg/log"
	"bookmark-manager/pkg/metrics"
)

// Config tunes the shared middlewares.
type Config struct {
	// AllowedOrigins lists CORS origins. "*" or an empty list allows all.
	AllowedOrigins []string
	// RequestsPerMin is the per-client budget. Zero disables rate limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	metrics *metrics.Metrics
	origins map[string]struct{}
	anyOrig bool
	limiter *rateLimiter
}

// New builds the middleware set. m may be nil.
func New(l log.Logger, cfg Config, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
		origins: make(map[string]struct{}, len(cfg.AllowedOrigins)),
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			mw.anyOrig = true
		}
		mw.origins[o] = struct{}{}
	}
	if len(cfg.AllowedOrigins) == 0 {
		mw.anyOrig = true
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
