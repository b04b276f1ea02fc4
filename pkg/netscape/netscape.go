// Package netscape reads and writes the Netscape bookmark file format used by
// every major browser for bookmark import/export.
package netscape

import (
	"time"
)

// Link is a single <A> entry.
type Link struct {
	Title       string
	URL         string
	Description string
	Icon        string
	Tags        []string
	AddDate     time.Time
}

// Folder is an <H3> heading with its nested list. The root folder has no name.
type Folder struct {
	Name    string
	AddDate time.Time
	Links   []Link
	Folders []*Folder
}

// Count returns the number of links in f and all sub-folders.
func (f *Folder) Count() int {
	if f == nil {
		return 0
	}
	n := len(f.Links)
	for _, sub := range f.Folders {
		n += sub.Count()
	}
	return n
}
