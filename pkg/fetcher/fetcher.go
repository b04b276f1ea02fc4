package fetcher

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/net/html/charset"

	"bookmark-manager/pkg/urlguard"
)

// Fetcher performs outbound GETs on behalf of the scraping endpoints.
type Fetcher struct {
	client *http.Client
	guard  *urlguard.Guard
	cfg    Config
}

// New builds a Fetcher whose dialer refuses addresses rejected by guard.
func New(guard *urlguard.Guard, cfg Config) *Fetcher {
	if guard == nil {
		guard = urlguard.New()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = DefaultMaxImageBytes
	}
	if cfg.MaxRedirects <= 0 {
		cfg.MaxRedirects = DefaultMaxRedirects
	}

	transport := cleanhttp.DefaultPooledTransport()
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
		Control:   guard.DialControl,
	}
	transport.DialContext = dialer.DialContext

	f := &Fetcher{guard: guard, cfg: cfg}
	f.client = &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.MaxRedirects {
				return ErrTooManyRedirects
			}
			_, err := guard.CheckURL(req.URL.String())
			return err
		},
	}
	return f
}

// FetchPage downloads an HTML page. ctx carries the per-call timeout.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (Page, error) {
	u, err := f.guard.Resolve(ctx, rawURL)
	if err != nil {
		return Page{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,zh-CN;q=0.8,zh;q=0.7")

	resp, err := f.client.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Page{}, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTML(contentType) {
		return Page{}, fmt.Errorf("%w: %s", ErrNotHTML, contentType)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes), contentType)
	if err != nil {
		return Page{}, fmt.Errorf("decode charset: %w", err)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return Page{}, fmt.Errorf("read body: %w", err)
	}

	return Page{
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        string(raw),
	}, nil
}

// FetchImage opens an upstream image. The response body is capped at MaxImageBytes.
func (f *Fetcher) FetchImage(ctx context.Context, rawURL string) (Image, error) {
	u, err := f.guard.Resolve(ctx, rawURL)
	if err != nil {
		return Image{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Image{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8")
	req.Header.Set("Referer", u.Scheme+"://"+u.Host+"/")

	resp, err := f.client.Do(req)
	if err != nil {
		return Image{}, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return Image{}, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isImage(contentType) {
		resp.Body.Close()
		return Image{}, fmt.Errorf("%w: %s", ErrNotImage, contentType)
	}

	length := resp.ContentLength
	if length > f.cfg.MaxImageBytes {
		resp.Body.Close()
		return Image{}, fmt.Errorf("%w: image of %d bytes exceeds limit", ErrNotImage, length)
	}

	return Image{
		ContentType: contentType,
		Length:      length,
		Body:        limitedReadCloser{Reader: io.LimitReader(resp.Body, f.cfg.MaxImageBytes), Closer: resp.Body},
	}, nil
}

type limitedReadCloser struct {
	io.Reader
	io.Closer
}

func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(strings.ToLower(contentType), "html")
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml" || mediaType == "text/plain"
}

func isImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/")
}
