package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"bookmark-manager/pkg/seed"
)

const sample = `
domains:
  github.com:
    description: "  Where the world builds software  "
  www.Example.org:
    description: Example domain
    image: https://example.org/logo.png
  docs.python.org:
    description: Python docs
`

func TestParseAndLookup(t *testing.T) {
	ds, err := seed.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", ds.Len())
	}

	tests := []struct {
		host string
		want string
		ok   bool
	}{
		{"github.com", "Where the world builds software", true},
		{"www.github.com", "Where the world builds software", true},
		{"gist.github.com", "Where the world builds software", true},
		{"EXAMPLE.org", "Example domain", true},
		{"docs.python.org", "Python docs", true},
		{"python.org", "", false},
		{"unknown.com", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			e, ok := ds.Lookup(tt.host)
			if ok != tt.ok || e.Description != tt.want {
				t.Errorf("Lookup(%q) = %q,%v want %q,%v", tt.host, e.Description, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := seed.Parse([]byte("domains:\n  a.com:\n    bogus: 1\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		ds, err := seed.Load("")
		if err != nil || ds.Len() != 0 {
			t.Fatalf("expected empty dataset, got %v %v", ds.Len(), err)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
			t.Fatal(err)
		}
		ds, err := seed.Load(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if _, ok := ds.Lookup("github.com"); !ok {
			t.Error("expected github.com entry")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := seed.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error")
		}
	})
}
