package scraper

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var ldScriptRe = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']?application/ld\+json["']?[^>]*>(.*?)</script>`)

type ldNode = gjson.Result

// jsonLD returns every JSON-LD object on the page, with arrays and @graph flattened.
func (p *page) jsonLD() []ldNode {
	if p.ldDone {
		return p.ld
	}
	p.ldDone = true
	for _, m := range ldScriptRe.FindAllStringSubmatch(p.raw, -1) {
		body := sanitizeJSON(m[1])
		if !gjson.Valid(body) {
			continue
		}
		p.ld = appendLDNodes(p.ld, gjson.Parse(body), 0)
	}
	return p.ld
}

func appendLDNodes(dst []ldNode, r gjson.Result, depth int) []ldNode {
	if depth > 4 {
		return dst
	}
	switch {
	case r.IsArray():
		r.ForEach(func(_, v gjson.Result) bool {
			dst = appendLDNodes(dst, v, depth+1)
			return true
		})
	case r.IsObject():
		dst = append(dst, r)
		r.ForEach(func(k, v gjson.Result) bool {
			if k.String() == "@graph" {
				dst = appendLDNodes(dst, v, depth+1)
			}
			return true
		})
	}
	return dst
}

// ldString returns the first non-empty string value for keys across all JSON-LD nodes.
func (p *page) ldString(keys ...string) string {
	nodes := p.jsonLD()
	for _, key := range keys {
		for _, n := range nodes {
			v := n.Get(key)
			if v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
				return v.Str
			}
		}
	}
	return ""
}

// ldImage handles the string, ImageObject and array forms of "image".
func (p *page) ldImage() string {
	for _, n := range p.jsonLD() {
		if img := imageValue(n.Get("image")); img != "" {
			return img
		}
		if img := imageValue(n.Get("thumbnailUrl")); img != "" {
			return img
		}
	}
	return ""
}

func imageValue(v gjson.Result) string {
	switch {
	case v.Type == gjson.String:
		return strings.TrimSpace(v.Str)
	case v.IsArray():
		var out string
		v.ForEach(func(_, item gjson.Result) bool {
			out = imageValue(item)
			return out == ""
		})
		return out
	case v.IsObject():
		if u := v.Get("url"); u.Type == gjson.String {
			return strings.TrimSpace(u.Str)
		}
		if u := v.Get("contentUrl"); u.Type == gjson.String {
			return strings.TrimSpace(u.Str)
		}
	}
	return ""
}

// sanitizeJSON replaces raw control characters that hand-written JSON-LD often
// contains inside strings and that make it invalid.
func sanitizeJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<!--")
	s = strings.TrimSuffix(s, "-->")
	s = strings.TrimPrefix(s, "//<![CDATA[")
	s = strings.TrimSuffix(s, "//]]>")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, strings.TrimSpace(s))
}
