package placeholder

import (
	"fmt"
	"hash/fnv"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	Width       = 1200
	Height      = 630
	ContentType = "image/svg+xml"
)

// SVG renders a deterministic placeholder card for host. The background hue
// is derived from the host so the same site always gets the same colour.
func SVG(host string) []byte {
	host = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
	if host == "" {
		host = "unknown"
	}

	hue := Hue(host)
	letter := initial(host)
	label := html.EscapeString(host)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, Width, Height, Width, Height)
	b.WriteString(`<defs><linearGradient id="bg" x1="0" y1="0" x2="1" y2="1">`)
	fmt.Fprintf(&b, `<stop offset="0%%" stop-color="hsl(%d,70%%,55%%)"/>`, hue)
	fmt.Fprintf(&b, `<stop offset="100%%" stop-color="hsl(%d,70%%,35%%)"/>`, (hue+40)%360)
	b.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#bg)"/>`, Width, Height)
	fmt.Fprintf(&b, `<text x="50%%" y="45%%" font-family="system-ui,sans-serif" font-size="200" font-weight="700" fill="#fff" fill-opacity="0.9" text-anchor="middle" dominant-baseline="middle">%s</text>`, html.EscapeString(letter))
	fmt.Fprintf(&b, `<text x="50%%" y="78%%" font-family="system-ui,sans-serif" font-size="48" fill="#fff" text-anchor="middle">%s</text>`, label)
	b.WriteString(`</svg>`)
	return []byte(b.String())
}

// Hue maps host onto [0, 360).
func Hue(host string) int {
	h := fnv.New32a()
	h.Write([]byte(host))
	return int(h.Sum32() % 360)
}

func initial(host string) string {
	r, _ := utf8.DecodeRuneInString(host)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
