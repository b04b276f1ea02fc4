package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	metaTagRe  = regexp.MustCompile(`(?is)<meta\s(?:[^>"']|"[^"]*"|'[^']*')*>`)
	linkTagRe  = regexp.MustCompile(`(?is)<link\s(?:[^>"']|"[^"]*"|'[^']*')*>`)
	attrRe     = regexp.MustCompile(`(?is)([a-z_:.\-]+)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	titleTagRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
)

// page is a fetched document with lazily built views over it.
type page struct {
	url   *url.URL
	host  string
	raw   string
	metas []map[string]string
	links []map[string]string

	doc     *goquery.Document
	docDone bool

	ld     []ldNode
	ldDone bool
}

func newPage(u *url.URL, raw string) *page {
	p := &page{url: u, raw: raw}
	if u != nil {
		p.host = strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	}
	for _, m := range metaTagRe.FindAllString(raw, -1) {
		p.metas = append(p.metas, parseAttrs(m))
	}
	for _, l := range linkTagRe.FindAllString(raw, -1) {
		p.links = append(p.links, parseAttrs(l))
	}
	return p
}

func parseAttrs(tag string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(tag, -1) {
		key := strings.ToLower(m[1])
		val := m[2]
		if val == "" {
			val = m[3]
		}
		if val == "" {
			val = m[4]
		}
		if _, exists := attrs[key]; !exists {
			attrs[key] = val
		}
	}
	return attrs
}

// meta returns the content of the first meta tag whose name, property or
// itemprop matches one of keys, trying keys in order.
func (p *page) meta(keys ...string) string {
	for _, key := range keys {
		for _, m := range p.metas {
			for _, attr := range []string{"property", "name", "itemprop"} {
				if strings.EqualFold(m[attr], key) {
					if content := strings.TrimSpace(m["content"]); content != "" {
						return content
					}
				}
			}
		}
	}
	return ""
}

func (p *page) titleTag() string {
	m := titleTagRe.FindStringSubmatch(p.raw)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func (p *page) document() *goquery.Document {
	if p.docDone {
		return p.doc
	}
	p.docDone = true
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.raw))
	if err == nil {
		p.doc = doc
	}
	return p.doc
}

// resolve makes ref absolute against the page URL.
func (p *page) resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "data:") {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if p.url == nil {
		return parsed.String()
	}
	return p.url.ResolveReference(parsed).String()
}

// hostIs reports whether the page host equals domain or is a subdomain of it.
func (p *page) hostIs(domain string) bool {
	return p.host == domain || strings.HasSuffix(p.host, "."+domain)
}
