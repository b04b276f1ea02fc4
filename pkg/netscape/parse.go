package netscape

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads a bookmark file into a folder tree.
func Parse(r io.Reader) (*Folder, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	root := &Folder{}
	stack := []*Folder{root}
	var (
		pending  *Folder
		lastLink *Link
	)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		owns := false
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.H3:
				f := &Folder{Name: strings.TrimSpace(nodeText(n)), AddDate: unixAttr(n, "add_date")}
				cur := stack[len(stack)-1]
				cur.Folders = append(cur.Folders, f)
				pending = f
				lastLink = nil
				return
			case atom.Dl:
				if pending != nil {
					stack = append(stack, pending)
					pending = nil
					owns = true
				}
			case atom.A:
				href := strings.TrimSpace(attr(n, "href"))
				if href == "" {
					return
				}
				cur := stack[len(stack)-1]
				cur.Links = append(cur.Links, Link{
					Title:   strings.TrimSpace(nodeText(n)),
					URL:     href,
					Icon:    attr(n, "icon"),
					Tags:    splitTags(attr(n, "tags")),
					AddDate: unixAttr(n, "add_date"),
				})
				lastLink = &cur.Links[len(cur.Links)-1]
				return
			case atom.Dd:
				if lastLink != nil && lastLink.Description == "" {
					lastLink.Description = strings.TrimSpace(directText(n))
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if owns {
			stack = stack[:len(stack)-1]
			lastLink = nil
		}
	}

	walk(doc)
	return root, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func unixAttr(n *html.Node, key string) time.Time {
	v := strings.TrimSpace(attr(n, key))
	if v == "" {
		return time.Time{}
	}
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil || sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

// directText ignores nested elements so a <DD> swallowing a following <DL>
// does not leak its links into the description.
func directText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
