package usecase

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"bookmark-manager/internal/media"
	"bookmark-manager/pkg/fetcher"
	"bookmark-manager/pkg/urlguard"
	"bookmark-manager/pkg/urlnorm"
)

// ProxyImage fetches input.URL, or the Google favicon of its host when that fails.
func (uc *implUseCase) ProxyImage(ctx context.Context, input media.ProxyImageInput) (media.ImageOutput, error) {
	u, err := uc.parse(input.URL)
	if err != nil {
		return media.ImageOutput{}, err
	}

	img, err := uc.fetchImage(ctx, u.String())
	if err == nil {
		uc.metrics.Scrape("proxy-image", "ok")
		return toOutput(img, media.SourceUpstream), nil
	}
	if urlguard.IsBlocked(err) {
		uc.l.Warnf(ctx, "uc.ProxyImage blocked %s: %v", u.Host, err)
		uc.metrics.Scrape("proxy-image", "blocked")
		return media.ImageOutput{}, media.ErrBlockedHost
	}
	uc.l.Warnf(ctx, "uc.ProxyImage FetchImage %s: %v", u.String(), err)

	img, ferr := uc.fetchImage(ctx, FaviconURL(uc.cfg.FaviconEndpoint, u.Hostname()))
	if ferr != nil {
		uc.l.Warnf(ctx, "uc.ProxyImage favicon %s: %v", u.Hostname(), ferr)
		uc.metrics.Scrape("proxy-image", "error")
		return media.ImageOutput{}, errors.Join(media.ErrUpstream, err, ferr)
	}
	uc.metrics.Scrape("proxy-image", "favicon")
	return toOutput(img, media.SourceFavicon), nil
}

// FaviconURL builds the favicon service URL for host at 64px.
func FaviconURL(endpoint, host string) string {
	if endpoint == "" {
		endpoint = defaultFaviconEndpoint
	}
	q := url.Values{}
	q.Set("domain", host)
	q.Set("sz", "64")
	return endpoint + "?" + q.Encode()
}

// fetchImage runs one leg under its own timeout. The timeout stays armed
// while the caller streams the body and is released on Close.
func (uc *implUseCase) fetchImage(ctx context.Context, raw string) (fetcher.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.ImageTimeout)
	img, err := uc.images.FetchImage(ctx, raw)
	if err != nil {
		cancel()
		return fetcher.Image{}, err
	}
	img.Body = &cancelOnClose{ReadCloser: img.Body, cancel: cancel}
	return img, nil
}

func (uc *implUseCase) parse(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, media.ErrMissingURL
	}
	u, err := urlnorm.Parse(raw)
	if err != nil {
		return nil, media.ErrInvalidURL
	}
	if _, err := uc.guard.CheckURL(u.String()); err != nil {
		return nil, media.ErrBlockedHost
	}
	return u, nil
}

func toOutput(img fetcher.Image, source string) media.ImageOutput {
	return media.ImageOutput{
		ContentType: img.ContentType,
		Length:      img.Length,
		Body:        img.Body,
		Source:      source,
	}
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

func urlHost(raw string) string {
	if u, err := urlnorm.Parse(raw); err == nil {
		return u.Hostname()
	}
	return ""
}
