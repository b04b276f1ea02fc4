package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is curated metadata for a domain.
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

type file struct {
	Domains map[string]Entry `yaml:"domains"`
}

// Dataset maps lower-case hosts to curated entries.
type Dataset struct {
	entries map[string]Entry
}

// Empty returns a dataset without entries.
func Empty() *Dataset {
	return &Dataset{entries: map[string]Entry{}}
}

// Load reads a YAML dataset from path. An empty path yields an empty dataset.
func Load(path string) (*Dataset, error) {
	if strings.TrimSpace(path) == "" {
		return Empty(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset of the form:
//
//	domains:
//	  github.com:
//	    description: ...
func Parse(data []byte) (*Dataset, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}

	ds := Empty()
	for host, e := range f.Domains {
		h := normalizeHost(host)
		if h == "" {
			continue
		}
		e.Title = strings.TrimSpace(e.Title)
		e.Description = strings.TrimSpace(e.Description)
		e.Image = strings.TrimSpace(e.Image)
		ds.entries[h] = e
	}
	return ds, nil
}

// Len returns the number of domains.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Lookup finds the entry for host, trying the host itself and then each
// parent domain down to the registrable two-label name.
func (d *Dataset) Lookup(host string) (Entry, bool) {
	if d == nil || len(d.entries) == 0 {
		return Entry{}, false
	}
	h := normalizeHost(host)
	for h != "" {
		if e, ok := d.entries[h]; ok {
			return e, true
		}
		i := strings.IndexByte(h, '.')
		if i < 0 {
			break
		}
		parent := h[i+1:]
		if !strings.Contains(parent, ".") {
			break
		}
		h = parent
	}
	return Entry{}, false
}

func normalizeHost(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	h = strings.TrimSuffix(h, ".")
	return strings.TrimPrefix(h, "www.")
}
