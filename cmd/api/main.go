package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookmark-manager/config"
	_ "bookmark-manager/docs" // Swagger docs
	bookmarkRepo "bookmark-manager/internal/bookmark/repository/sqlite"
	bookmarkUC "bookmark-manager/internal/bookmark/usecase"
	"bookmark-manager/internal/httpserver"
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
	pkgSQLite "bookmark-manager/pkg/sqlite"
	"bookmark-manager/pkg/urlguard"
)

// @title       Bookmark Manager API
// @description Bookmark library with categories, tags, enhancement, import/export and page scraping endpoints.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Bookmark Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := pkgSQLite.Connect(ctx, cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := bookmarkRepo.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	var metaCache cache.Cache = cache.NewMemory(cfg.Metadata.CacheSize, cfg.Metadata.CacheTTL)
	if cfg.Redis.Addr != "" {
		redisCache, rErr := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if rErr != nil {
			logger.Warnf(ctx, "Redis not available, using in-process cache: %v", rErr)
		} else {
			defer redisCache.Close()
			metaCache = redisCache
			logger.Infof(ctx, "Redis cache at %s", cfg.Redis.Addr)
		}
	}

	// 4. Scraping
	guard := urlguard.New(urlguard.AllowPrivate(cfg.Scraper.AllowPrivateHosts))
	pageFetcher := fetcher.New(guard, fetcher.Config{
		UserAgent:     cfg.Scraper.UserAgent,
		MaxBodyBytes:  cfg.Scraper.MaxBodyBytes,
		MaxImageBytes: cfg.ImageProxy.MaxBytes,
	})

	var shots screenshot.Chain
	if cfg.Screenshot.ServiceURL != "" {
		shots = append(shots, screenshot.NewService(cfg.Screenshot.ServiceURL, cfg.Screenshot.Timeout))
	}
	if cfg.Screenshot.ChromedpEnabled {
		shots = append(shots, screenshot.Chrome{
			Timeout:   cfg.Screenshot.Timeout,
			UserAgent: cfg.Scraper.UserAgent,
			ExecPath:  cfg.Screenshot.ChromePath,
			Guard:     guard,
		})
	}
	var capturer screenshot.Capturer
	if len(shots) > 0 {
		capturer = shots
	}

	// 5. Library
	dataset, err := seed.Load(cfg.Enhance.SeedPath)
	if err != nil {
		logger.Warnf(ctx, "Seed dataset not loaded, enhancement relies on scraping only: %v", err)
		dataset = seed.Empty()
	}

	syncClient := remote.New(remote.Config{
		BaseURL: cfg.Sync.BaseURL,
		APIKey:  cfg.Sync.APIKey,
		UserID:  cfg.Sync.UserID,
		Table:   cfg.Sync.Table,
	}, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		},
		Metrics:    metrics.New(),
		DB:         db,
		Cache:      metaCache,
		Fetcher:    pageFetcher,
		Guard:      guard,
		Screenshot: capturer,
		Seed:       dataset,
		Remote:     syncClient,
		Metadata: metadataUC.Config{
			TitleTimeout: cfg.Scraper.TitleTimeout,
			MetaTimeout:  cfg.Scraper.MetaTimeout,
			CacheTTL:     cfg.Metadata.CacheTTL,
		},
		Media: mediaUC.Config{
			ImageTimeout:      cfg.ImageProxy.Timeout,
			ScreenshotTimeout: cfg.Screenshot.Timeout,
		},
		Bookmark: bookmarkUC.Config{
			RatePerSec: cfg.Enhance.RatePerSec,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
