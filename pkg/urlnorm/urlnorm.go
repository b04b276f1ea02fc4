// Package urlnorm turns user supplied links into absolute http(s) URLs and
// their canonical form used for duplicate detection and cache keys.
package urlnorm

import (
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
)

var ErrInvalidURL = errors.New("invalid url")

const canonicalFlags = purell.FlagsSafe

// Parse accepts an absolute http(s) URL. A URL without a scheme is treated as https.
func Parse(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidURL
	}
	switch {
	case strings.HasPrefix(raw, "//"):
		raw = "https:" + raw
	case !strings.Contains(raw, "://"):
		if u, err := url.Parse(raw); err == nil && u.Opaque != "" && !startsWithDigit(u.Opaque) {
			return nil, ErrInvalidURL
		}
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, ErrInvalidURL
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, ErrInvalidURL
	}
	if u.Hostname() == "" || strings.ContainsAny(u.Host, " \t") {
		return nil, ErrInvalidURL
	}
	return u, nil
}

// Normalize returns the display form of u: lower-case scheme and host,
// default port removed, empty path replaced by "/". The fragment is kept.
func Normalize(u *url.URL) string {
	c := *u
	if c.Path == "" && c.RawPath == "" {
		c.Path = "/"
	}
	return purell.NormalizeURL(&c, canonicalFlags)
}

// Canonical is Normalize without the fragment, unless the fragment is a hash
// route ("#/..." or "#!...") which addresses a distinct page in single-page
// apps. It is the key used for duplicate detection and caching.
func Canonical(u *url.URL) string {
	c := *u
	if !IsHashRoute(c.Fragment) {
		c.Fragment, c.RawFragment = "", ""
	}
	return Normalize(&c)
}

// IsHashRoute reports whether a fragment is client-side routing state.
func IsHashRoute(fragment string) bool {
	return strings.HasPrefix(fragment, "/") || strings.HasPrefix(fragment, "!")
}

// CanonicalString parses raw and returns its canonical form.
func CanonicalString(raw string) (string, error) {
	u, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Canonical(u), nil
}

// startsWithDigit tells "host:port" apart from "mailto:..." style opaque URLs.
func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
