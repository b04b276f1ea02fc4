package scraper

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	nextDataRe   = regexp.MustCompile(`(?is)<script[^>]*id\s*=\s*["']__NEXT_DATA__["'][^>]*>(.*?)</script>`)
	jsonScriptRe = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/json["'][^>]*>(.*?)</script>`)
)

// Globals that SPAs assign to hand server state to the client, with or
// without a "window." prefix.
var stateVars = []string{
	"__INITIAL_STATE__",
	"__PRELOADED_STATE__",
	"__APOLLO_STATE__",
	"__NUXT__",
	"__INITIAL_DATA__",
}

// Keys searched for an article body or summary, most specific first.
var spaDescriptionKeys = []string{"description", "summary", "excerpt", "abstract", "articleBody", "content"}

const (
	minSPATextRunes = 20
	maxSPADepth     = 16
	maxSPANodes     = 20000
)

// spaBlobs returns the JSON documents embedded in the page for client-side hydration.
func (p *page) spaBlobs() []gjson.Result {
	var blobs []gjson.Result
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && gjson.Valid(s) {
			blobs = append(blobs, gjson.Parse(s))
		}
	}

	for _, m := range nextDataRe.FindAllStringSubmatch(p.raw, -1) {
		add(m[1])
	}
	for _, m := range jsonScriptRe.FindAllStringSubmatch(p.raw, -1) {
		add(m[1])
	}
	for _, name := range stateVars {
		if rhs, ok := stateAssignment(p.raw, name); ok {
			add(balancedJSON(rhs))
		}
	}
	return blobs
}

// stateAssignment returns the text after the first "name = " in raw. Reads
// such as "if (window.name)" or comparisons are skipped.
func stateAssignment(raw, name string) (string, bool) {
	for from := 0; from < len(raw); {
		idx := strings.Index(raw[from:], name)
		if idx < 0 {
			return "", false
		}
		from += idx + len(name)
		rest := strings.TrimLeft(raw[from:], " \t\r\n")
		if strings.HasPrefix(rest, "=") && !strings.HasPrefix(rest, "==") {
			return strings.TrimLeft(rest[1:], " \t\r\n"), true
		}
	}
	return "", false
}

// spaDescription deep-searches embedded state for the best description-like string.
func (p *page) spaDescription() string {
	found := make(map[string]string, len(spaDescriptionKeys))
	wanted := make(map[string]struct{}, len(spaDescriptionKeys))
	for _, k := range spaDescriptionKeys {
		wanted[k] = struct{}{}
	}

	for _, blob := range p.spaBlobs() {
		budget := maxSPANodes
		deepSearch(blob, wanted, found, 0, &budget)
	}
	for _, k := range spaDescriptionKeys {
		if v := found[k]; v != "" {
			return v
		}
	}
	return ""
}

func deepSearch(r gjson.Result, wanted map[string]struct{}, found map[string]string, depth int, budget *int) {
	if depth > maxSPADepth || *budget <= 0 {
		return
	}
	if !r.IsObject() && !r.IsArray() {
		return
	}
	r.ForEach(func(k, v gjson.Result) bool {
		*budget--
		if *budget <= 0 {
			return false
		}
		if v.Type == gjson.String {
			key := k.String()
			if _, ok := wanted[key]; ok && found[key] == "" && looksLikeProse(v.Str) {
				found[key] = v.Str
			}
			return true
		}
		deepSearch(v, wanted, found, depth+1, budget)
		return true
	})
}

// looksLikeProse filters out ids, urls and other short machine values.
func looksLikeProse(s string) bool {
	text := CleanText(s)
	if runeLen(text) < minSPATextRunes {
		return false
	}
	if !strings.Contains(text, " ") && (strings.HasPrefix(text, "http") || strings.HasPrefix(text, "/")) {
		return false
	}
	return true
}

// balancedJSON returns the JSON object or array starting at the first '{' or '['
// of s, honouring string literals. It returns "" when unbalanced.
func balancedJSON(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	if strings.TrimSpace(s[:start]) != "" {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
