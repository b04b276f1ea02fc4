package usecase

import (
	"context"
	"encoding/json"

	"bookmark-manager/pkg/cache"
	"bookmark-manager/pkg/scraper"
)

const cacheNamespace = "meta"

func cacheKey(canonicalURL string) string {
	return cache.Key(cacheNamespace, canonicalURL)
}

func (uc *implUseCase) cacheGet(ctx context.Context, key string) (scraper.Meta, bool) {
	if uc.cache == nil {
		return scraper.Meta{}, false
	}
	raw, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "uc.cacheGet %s: %v", key, err)
		return scraper.Meta{}, false
	}
	uc.metrics.CacheLookup(ok)
	if !ok {
		return scraper.Meta{}, false
	}

	var meta scraper.Meta
	if err := json.Unmarshal(raw, &meta); err != nil {
		uc.l.Warnf(ctx, "uc.cacheGet Unmarshal: %v", err)
		return scraper.Meta{}, false
	}
	return meta, true
}

func (uc *implUseCase) cacheSet(ctx context.Context, key string, meta scraper.Meta) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, raw, uc.cfg.CacheTTL); err != nil {
		uc.l.Warnf(ctx, "uc.cacheSet %s: %v", key, err)
	}
}
