package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Generic containers that usually hold a summary or the article lead.
var descriptionSelectors = []string{
	"article p",
	"main p",
	".description",
	".summary",
	"#description",
	".post-content p",
	".entry-content p",
	".content p",
}

const (
	minSelectorTextRunes    = 40
	minReadabilityTextRunes = 40
)

func (p *page) firstHeading() string {
	doc := p.document()
	if doc == nil {
		return ""
	}
	var out string
	doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		out = CleanText(s.Text())
		return out == ""
	})
	return out
}

func (p *page) selectorDescription() string {
	doc := p.document()
	if doc == nil {
		return ""
	}
	for _, sel := range descriptionSelectors {
		var out string
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := CleanText(s.Text())
			if runeLen(text) >= minSelectorTextRunes {
				out = text
				return false
			}
			return true
		})
		if out != "" {
			return out
		}
	}
	return ""
}

// readabilityDescription runs the readability heuristics and keeps the text lead.
func (p *page) readabilityDescription() string {
	pageURL := p.url
	if pageURL == nil {
		pageURL = &url.URL{}
	}
	article, err := readability.FromReader(strings.NewReader(p.raw), pageURL)
	if err != nil {
		return ""
	}
	text := CleanText(article.TextContent)
	if runeLen(text) < minReadabilityTextRunes {
		return ""
	}
	return text
}
