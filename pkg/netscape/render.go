package netscape

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
`

// Render writes root as a bookmark file.
func Render(w io.Writer, root *Folder) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	writeList(bw, root, 0)
	return bw.Flush()
}

func writeList(w *bufio.Writer, f *Folder, depth int) {
	indent := strings.Repeat("    ", depth)
	fmt.Fprintf(w, "%s<DL><p>\n", indent)
	if f != nil {
		for _, sub := range f.Folders {
			fmt.Fprintf(w, "%s    <DT><H3%s>%s</H3>\n", indent, dateAttr(sub.AddDate), html.EscapeString(sub.Name))
			writeList(w, sub, depth+1)
		}
		for _, l := range f.Links {
			writeLink(w, l, indent+"    ")
		}
	}
	fmt.Fprintf(w, "%s</DL><p>\n", indent)
}

func writeLink(w *bufio.Writer, l Link, indent string) {
	fmt.Fprintf(w, `%s<DT><A HREF="%s"%s`, indent, html.EscapeString(l.URL), dateAttr(l.AddDate))
	if l.Icon != "" {
		fmt.Fprintf(w, ` ICON="%s"`, html.EscapeString(l.Icon))
	}
	if len(l.Tags) > 0 {
		fmt.Fprintf(w, ` TAGS="%s"`, html.EscapeString(strings.Join(l.Tags, ",")))
	}
	fmt.Fprintf(w, ">%s</A>\n", html.EscapeString(l.Title))
	if l.Description != "" {
		fmt.Fprintf(w, "%s<DD>%s\n", indent, html.EscapeString(l.Description))
	}
}

func dateAttr(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf(` ADD_DATE="%d"`, t.Unix())
}
