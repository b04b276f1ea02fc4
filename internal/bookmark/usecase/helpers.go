package usecase

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/pkg/scraper"
	"bookmark-manager/pkg/urlnorm"
)

const (
	maxNameRunes  = 100
	maxTitleRunes = 500
)

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameRunes {
		return "", bookmark.ErrInvalidName
	}
	return name, nil
}

// parseLink returns the link as stored, its duplicate-detection key and the
// parsed value. The stored link keeps its fragment.
func parseLink(raw string) (link, key string, u *url.URL, err error) {
	u, err = urlnorm.Parse(raw)
	if err != nil {
		return "", "", nil, bookmark.ErrInvalidURL
	}
	return urlnorm.Normalize(u), urlnorm.Canonical(u), u, nil
}

// normalizeTitle trims title and falls back to the host when empty.
func normalizeTitle(title string, u *url.URL) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = scraper.DomainTitle(u)
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		return "", bookmark.ErrInvalidTitle
	}
	return title, nil
}

// truncateTitle is the lenient variant used by imports.
func truncateTitle(title string, u *url.URL) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return scraper.DomainTitle(u)
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		return string([]rune(title)[:maxTitleRunes])
	}
	return title
}

// normalizeTags trims, drops empties and removes case-insensitive duplicates.
// The first spelling of a tag wins and order is kept.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
