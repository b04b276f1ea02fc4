package main

import (
	"context"
	"database/sql"
	"fmt"

	"bookmark-manager/config"
	"bookmark-manager/internal/bookmark"
	bookmarkRepo "bookmark-manager/internal/bookmark/repository/sqlite"
	bookmarkUC "bookmark-manager/internal/bookmark/usecase"
	metadataUC "bookmark-manager/internal/metadata/usecase"
	"bookmark-manager/internal/sync"
	syncUC "bookmark-manager/internal/sync/usecase"
	"bookmark-manager/pkg/cache"
	"bookmark-manager/pkg/fetcher"
	"bookmark-manager/pkg/log"
	"bookmark-manager/pkg/remote"
	"bookmark-manager/pkg/seed"
	pkgSQLite "bookmark-manager/pkg/sqlite"
	"bookmark-manager/pkg/urlguard"
)

// app holds what the subcommands share: one migrated database and the
// library UseCases built on it.
type app struct {
	cfg     *config.Config
	l       log.Logger
	db      *sql.DB
	library bookmark.UseCase
	sync    sync.UseCase
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := pkgSQLite.Connect(ctx, cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	if err := bookmarkRepo.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	guard := urlguard.New(urlguard.AllowPrivate(cfg.Scraper.AllowPrivateHosts))
	pageFetcher := fetcher.New(guard, fetcher.Config{
		UserAgent:    cfg.Scraper.UserAgent,
		MaxBodyBytes: cfg.Scraper.MaxBodyBytes,
	})
	meta := metadataUC.New(l, pageFetcher, cache.NewMemory(cfg.Metadata.CacheSize, cfg.Metadata.CacheTTL), nil, metadataUC.Config{
		TitleTimeout: cfg.Scraper.TitleTimeout,
		MetaTimeout:  cfg.Scraper.MetaTimeout,
		CacheTTL:     cfg.Metadata.CacheTTL,
	})

	dataset, err := seed.Load(cfg.Enhance.SeedPath)
	if err != nil {
		l.Warnf(ctx, "Seed dataset not loaded: %v", err)
		dataset = seed.Empty()
	}

	library := bookmarkUC.New(l, bookmarkRepo.New(db, l), meta, dataset, nil, bookmarkUC.Config{
		RatePerSec: cfg.Enhance.RatePerSec,
	})
	client := remote.New(remote.Config{
		BaseURL: cfg.Sync.BaseURL,
		APIKey:  cfg.Sync.APIKey,
		UserID:  cfg.Sync.UserID,
		Table:   cfg.Sync.Table,
	}, l)

	return &app{
		cfg:     cfg,
		l:       l,
		db:      db,
		library: library,
		sync:    syncUC.New(l, client, library, nil),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
