package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"bookmark-manager/internal/metadata"
	"bookmark-manager/pkg/scraper"
	"bookmark-manager/pkg/urlnorm"
)

// FetchTitle returns the page title or the domain when the page is unreachable.
func (uc *implUseCase) FetchTitle(ctx context.Context, input metadata.FetchInput) (metadata.TitleOutput, error) {
	u, err := uc.parse(input.URL)
	if err != nil {
		return metadata.TitleOutput{}, err
	}

	meta, ok := uc.scrape(ctx, "fetch-title", u, uc.cfg.TitleTimeout)
	if !ok {
		return metadata.TitleOutput{Title: scraper.DomainTitle(u), URL: u.String(), Fallback: true}, nil
	}
	return metadata.TitleOutput{Title: meta.Title, URL: u.String()}, nil
}

// FetchMeta returns title, description and image, falling back to the domain
// title with an empty description.
func (uc *implUseCase) FetchMeta(ctx context.Context, input metadata.FetchInput) (metadata.MetaOutput, error) {
	u, err := uc.parse(input.URL)
	if err != nil {
		return metadata.MetaOutput{}, err
	}

	meta, ok := uc.scrape(ctx, "fetch-meta", u, uc.cfg.MetaTimeout)
	if !ok {
		return metadata.MetaOutput{Title: scraper.DomainTitle(u), URL: u.String(), Fallback: true}, nil
	}
	return metadata.MetaOutput{
		Title:       meta.Title,
		Description: meta.Description,
		Image:       meta.Image,
		Favicon:     meta.Favicon,
		SiteName:    meta.SiteName,
		URL:         u.String(),
	}, nil
}

func (uc *implUseCase) parse(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, metadata.ErrMissingURL
	}
	u, err := urlnorm.Parse(raw)
	if err != nil {
		return nil, metadata.ErrInvalidURL
	}
	return u, nil
}

// scrape serves from cache or fetches and extracts. ok is false when the page
// could not be fetched; such results are not cached.
func (uc *implUseCase) scrape(ctx context.Context, endpoint string, u *url.URL, timeout time.Duration) (scraper.Meta, bool) {
	canonical := urlnorm.Canonical(u)
	key := cacheKey(canonical)
	if meta, hit := uc.cacheGet(ctx, key); hit {
		uc.metrics.Scrape(endpoint, "cache")
		return meta, true
	}

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page, err := uc.fetcher.FetchPage(fetchCtx, canonical)
	if err != nil {
		uc.l.Warnf(ctx, "uc.%s FetchPage %s: %v", endpoint, canonical, err)
		uc.metrics.Scrape(endpoint, "fallback")
		return scraper.Meta{}, false
	}

	final := u
	if fu, perr := url.Parse(page.FinalURL); perr == nil && fu.Host != "" {
		final = fu
	}
	meta := scraper.Extract(final, page.Body)
	uc.cacheSet(ctx, key, meta)
	uc.metrics.Scrape(endpoint, "ok")
	return meta, true
}
