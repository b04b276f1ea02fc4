package scraper

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleRunes       = 200
	MaxDescriptionRunes = 300

	ellipsis = "..."
)

var (
	tagRe     = regexp.MustCompile(`(?s)<[^>]*>`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// Known site-name decorations removed from the end of titles.
var titleSuffixes = []string{
	" - YouTube",
	"_哔哩哔哩_bilibili",
	"_哔哩哔哩 (゜-゜)つロ 干杯~-bilibili",
	" - 知乎",
	" - 掘金",
	"-CSDN博客",
	" - CSDN博客",
	" - Wikipedia",
	" - 维基百科，自由的百科全书",
	" - Medium",
	" / X",
	" / Twitter",
}

var mediumSuffixRe = regexp.MustCompile(`\s+\|\s+by\s+[^|]+\|\s+[^|]*Medium$`)

// CleanText strips tags, decodes HTML entities and collapses whitespace.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = commentRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, " ")
	// Some CMSs double-escape (&amp;quot;), two passes cover them.
	for i := 0; i < 2 && strings.Contains(s, "&"); i++ {
		decoded := html.UnescapeString(s)
		if decoded == s {
			break
		}
		s = decoded
	}
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string([]rune(s)[:max])
	}
	runes := []rune(s)[:max-len(ellipsis)]
	return strings.TrimRight(string(runes), " ,.;:-") + ellipsis
}

// CleanTitle normalises a title and drops known site suffixes.
func CleanTitle(s string) string {
	s = CleanText(s)
	for _, suffix := range titleSuffixes {
		if strings.HasSuffix(s, suffix) && len(s) > len(suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
		}
	}
	s = mediumSuffixRe.ReplaceAllString(s, "")
	return Truncate(s, MaxTitleRunes)
}

// CleanDescription normalises a description and bounds its length.
func CleanDescription(s string) string {
	return Truncate(CleanText(s), MaxDescriptionRunes)
}

// DomainTitle is the fallback title: the host without "www." and port.
func DomainTitle(u *url.URL) string {
	if u == nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// DomainTitleFromString parses raw and returns DomainTitle, or raw itself when
// it cannot be parsed.
func DomainTitleFromString(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		if u2, err2 := url.Parse("https://" + strings.TrimSpace(raw)); err2 == nil && u2.Host != "" {
			return DomainTitle(u2)
		}
		return strings.TrimSpace(raw)
	}
	return DomainTitle(u)
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
