package fetcher

import (
	"errors"
	"io"
)

var (
	ErrStatus           = errors.New("unexpected upstream status")
	ErrNotHTML          = errors.New("upstream did not return html")
	ErrNotImage         = errors.New("upstream did not return an image")
	ErrTooManyRedirects = errors.New("too many redirects")
)

const (
	DefaultUserAgent     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultMaxBodyBytes  = 2 << 20
	DefaultMaxImageBytes = 10 << 20
	DefaultMaxRedirects  = 5
)

// Config tunes a Fetcher. Zero values take the defaults above.
type Config struct {
	UserAgent     string
	MaxBodyBytes  int64
	MaxImageBytes int64
	MaxRedirects  int
}

// Page is a fetched HTML document decoded to UTF-8.
type Page struct {
	FinalURL    string
	StatusCode  int
	ContentType string
	Body        string
}

// Image is a streamed upstream image. Callers must close Body.
type Image struct {
	ContentType string
	Length      int64
	Body        io.ReadCloser
}
