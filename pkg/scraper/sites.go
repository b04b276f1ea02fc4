package scraper

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// siteExtractor holds host-specific rules that run before the generic chain.
type siteExtractor struct {
	domains     []string
	title       func(p *page) string
	description func(p *page) string
}

var (
	ytShortDescRe  = jsonStringField("shortDescription")
	ytTitleRe      = regexp.MustCompile(`(?s)"videoDetails"\s*:\s*\{[^{}]*?"title"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	biliDescRe     = jsonStringField("desc")
	biliH1Re       = regexp.MustCompile(`(?is)<h1[^>]*\btitle\s*=\s*"([^"]+)"`)
	zhihuExcerptRe = jsonStringField("excerpt")
	juejinBriefRe  = jsonStringField("brief_content")
	csdnDescRe     = regexp.MustCompile(`(?is)<div[^>]*class\s*=\s*"[^"]*\bblog-content-box\b[^"]*"[^>]*>.*?<p[^>]*>(.*?)</p>`)
	wikiParaRe     = regexp.MustCompile(`(?is)<div[^>]*id\s*=\s*"mw-content-text"[^>]*>.*?<p(?:\s[^>]*)?>(.{40,}?)</p>`)
)

func jsonStringField(name string) *regexp.Regexp {
	return regexp.MustCompile(`"` + regexp.QuoteMeta(name) + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
}

// jsonUnquote decodes the body of a JSON string literal captured by a regex.
func jsonUnquote(s string) string {
	return gjson.Parse(`"` + s + `"`).String()
}

func firstJSONString(re *regexp.Regexp, raw string) string {
	for _, m := range re.FindAllStringSubmatch(raw, 8) {
		if v := jsonUnquote(m[1]); looksLikeProse(v) {
			return v
		}
	}
	return ""
}

var siteExtractors = []siteExtractor{
	{
		domains: []string{"github.com"},
		title: func(p *page) string {
			t := p.meta("og:title")
			t = strings.TrimPrefix(t, "GitHub - ")
			if i := strings.Index(t, ": "); i > 0 && strings.Contains(t[:i], "/") {
				return t[:i]
			}
			return t
		},
		description: func(p *page) string {
			d := p.meta("og:description", "description")
			if i := strings.Index(d, "Contribute to "); i >= 0 && strings.HasSuffix(d, "on GitHub.") {
				d = strings.TrimSpace(d[:i])
			}
			if i := strings.LastIndex(d, " - "); i > 0 && strings.Contains(d[i:], "/") {
				d = d[:i]
			}
			return d
		},
	},
	{
		domains: []string{"youtube.com", "youtu.be"},
		title: func(p *page) string {
			if m := ytTitleRe.FindStringSubmatch(p.raw); len(m) > 1 {
				return jsonUnquote(m[1])
			}
			return p.meta("title", "og:title")
		},
		description: func(p *page) string {
			return firstJSONString(ytShortDescRe, p.raw)
		},
	},
	{
		domains: []string{"bilibili.com", "b23.tv"},
		title: func(p *page) string {
			if m := biliH1Re.FindStringSubmatch(p.raw); len(m) > 1 {
				return m[1]
			}
			return ""
		},
		description: func(p *page) string {
			return firstJSONString(biliDescRe, p.raw)
		},
	},
	{
		domains: []string{"zhihu.com"},
		description: func(p *page) string {
			return firstJSONString(zhihuExcerptRe, p.raw)
		},
	},
	{
		domains: []string{"juejin.cn"},
		description: func(p *page) string {
			return firstJSONString(juejinBriefRe, p.raw)
		},
	},
	{
		domains: []string{"csdn.net"},
		description: func(p *page) string {
			if d := p.meta("description"); d != "" {
				return d
			}
			if m := csdnDescRe.FindStringSubmatch(p.raw); len(m) > 1 {
				return m[1]
			}
			return ""
		},
	},
	{
		domains: []string{"wikipedia.org"},
		description: func(p *page) string {
			if m := wikiParaRe.FindStringSubmatch(p.raw); len(m) > 1 {
				return m[1]
			}
			return ""
		},
	},
	{
		domains: []string{"x.com", "twitter.com"},
		title: func(p *page) string {
			return p.meta("og:title")
		},
		description: func(p *page) string {
			return p.meta("og:description")
		},
	},
}

func (p *page) siteExtractor() *siteExtractor {
	for i := range siteExtractors {
		for _, d := range siteExtractors[i].domains {
			if p.hostIs(d) {
				return &siteExtractors[i]
			}
		}
	}
	return nil
}
