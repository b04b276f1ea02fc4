package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	bookmarkUC "bookmark-manager/internal/bookmark/usecase"
	mediaUC "bookmark-manager/internal/media/usecase"
	metadataUC "bookmark-manager/internal/metadata/usecase"
	"bookmark-manager/internal/middleware"
	"bookmark-manager/pkg/cache"
	"bookmark-manager/pkg/fetcher"
	"bookmark-manager/pkg/log"
	"bookmark-manager/pkg/metrics"
	"bookmark-manager/pkg/remote"
	"bookmark-manager/pkg/screenshot"
	"bookmark-manager/pkg/seed"
	"bookmark-manager/pkg/urlguard"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	middleware      middleware.Config
	metrics         *metrics.Metrics

	// Storage
	db    *sql.DB
	cache cache.Cache

	// Scraping
	fetcher *fetcher.Fetcher
	guard   *urlguard.Guard
	shots   screenshot.Capturer

	// Library
	seed   *seed.Dataset
	remote *remote.Client

	metadataCfg metadataUC.Config
	mediaCfg    mediaUC.Config
	bookmarkCfg bookmarkUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies lists the proxy IPs or CIDRs whose forwarding headers
	// name the client. Empty trusts none.
	TrustedProxies []string
	Middleware     middleware.Config
	Metrics        *metrics.Metrics

	// Storage
	DB    *sql.DB
	Cache cache.Cache

	// Scraping. Screenshot may be nil, the endpoint then always answers with a placeholder.
	Fetcher    *fetcher.Fetcher
	Guard      *urlguard.Guard
	Screenshot screenshot.Capturer

	// Library. Remote may be nil or disabled.
	Seed   *seed.Dataset
	Remote *remote.Client

	Metadata metadataUC.Config
	Media    mediaUC.Config
	Bookmark bookmarkUC.Config
}

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		metrics:         cfg.Metrics,
		db:              cfg.DB,
		cache:           cfg.Cache,
		fetcher:         cfg.Fetcher,
		guard:           cfg.Guard,
		shots:           cfg.Screenshot,
		seed:            cfg.Seed,
		remote:          cfg.Remote,
		metadataCfg:     cfg.Metadata,
		mediaCfg:        cfg.Media,
		bookmarkCfg:     cfg.Bookmark,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.fetcher == nil {
		return errors.New("fetcher is required")
	}
	if srv.guard == nil {
		return errors.New("guard is required")
	}
	return nil
}
