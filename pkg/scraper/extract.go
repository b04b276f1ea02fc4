package scraper

import (
	"net/url"
	"strings"
)

// Meta is what the scraper knows about a page.
type Meta struct {
	Title       string
	Description string
	Image       string
	SiteName    string
	Favicon     string
}

// Extract runs the title and description chains plus image and favicon lookup.
// It never fails: missing values fall back to the domain name or stay empty.
func Extract(pageURL *url.URL, html string) Meta {
	p := newPage(pageURL, html)
	return Meta{
		Title:       p.extractTitle(),
		Description: p.extractDescription(),
		Image:       p.extractImage(),
		SiteName:    CleanText(p.meta("og:site_name", "application-name")),
		Favicon:     p.extractFavicon(),
	}
}

// ExtractTitle runs only the title chain.
func ExtractTitle(pageURL *url.URL, html string) string {
	return newPage(pageURL, html).extractTitle()
}

func (p *page) extractTitle() string {
	chain := []func() string{
		func() string {
			if site := p.siteExtractor(); site != nil && site.title != nil {
				return site.title(p)
			}
			return ""
		},
		func() string { return p.meta("og:title", "twitter:title") },
		p.titleTag,
		func() string { return p.ldString("headline", "name") },
		p.firstHeading,
	}
	for _, step := range chain {
		if t := CleanTitle(step()); t != "" {
			return t
		}
	}
	return DomainTitle(p.url)
}

func (p *page) extractDescription() string {
	chain := []func() string{
		func() string {
			if site := p.siteExtractor(); site != nil && site.description != nil {
				return site.description(p)
			}
			return ""
		},
		func() string { return p.meta("og:description", "description", "twitter:description") },
		func() string { return p.ldString("description", "articleBody") },
		p.spaDescription,
		p.selectorDescription,
		p.readabilityDescription,
	}
	for _, step := range chain {
		if d := CleanDescription(step()); d != "" {
			return d
		}
	}
	return ""
}

func (p *page) extractImage() string {
	img := p.meta("og:image", "og:image:url", "og:image:secure_url", "twitter:image", "twitter:image:src")
	if img == "" {
		img = p.ldImage()
	}
	return p.resolve(img)
}

func (p *page) extractFavicon() string {
	var best string
	for _, l := range p.links {
		rel := strings.ToLower(l["rel"])
		href := l["href"]
		if href == "" || !strings.Contains(rel, "icon") {
			continue
		}
		if strings.Contains(rel, "mask-icon") {
			continue
		}
		// "icon" and "shortcut icon" beat apple-touch-icon.
		if !strings.Contains(rel, "apple") {
			return p.resolve(href)
		}
		if best == "" {
			best = href
		}
	}
	if best != "" {
		return p.resolve(best)
	}
	if p.url == nil || p.url.Host == "" {
		return ""
	}
	return (&url.URL{Scheme: p.url.Scheme, Host: p.url.Host, Path: "/favicon.ico"}).String()
}
