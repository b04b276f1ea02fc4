package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/internal/metadata"
	"bookmark-manager/pkg/seed"
)

const seedYAML = `
domains:
  github.com:
    description: Where the world builds software
  rust-lang.org:
    description: A language empowering everyone
    image: https://www.rust-lang.org/static/images/rust-social.jpg
`

func mustSeed(t *testing.T) *seed.Dataset {
	t.Helper()
	d, err := seed.Parse([]byte(seedYAML))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestEnhanceBookmark(t *testing.T) {
	ctx := context.Background()

	meta := &mockMeta{metas: map[string]metadata.MetaOutput{
		"https://blog.example.com/post": {
			Title:       "Post",
			Description: "A scraped description",
			Image:       "https://blog.example.com/og.png",
		},
		"https://nodesc.example.com/": {Title: "No description"},
	}}

	tests := []struct {
		name        string
		input       bookmark.CreateBookmarkInput
		wantDesc    string
		wantCover   string
		wantSources []string
		wantUpdated bool
		wantScrape  bool
	}{
		{
			name:        "seed by parent domain then favicon",
			input:       bookmark.CreateBookmarkInput{URL: "https://gist.github.com/x"},
			wantDesc:    "Where the world builds software",
			wantCover:   "favicon:gist.github.com",
			wantSources: []string{bookmark.SourceSeed, bookmark.SourceFavicon},
			wantUpdated: true,
			wantScrape:  true,
		},
		{
			name:        "seed fills both",
			input:       bookmark.CreateBookmarkInput{URL: "https://www.rust-lang.org"},
			wantDesc:    "A language empowering everyone",
			wantCover:   "https://www.rust-lang.org/static/images/rust-social.jpg",
			wantSources: []string{bookmark.SourceSeed},
			wantUpdated: true,
		},
		{
			name:        "scrape when no seed",
			input:       bookmark.CreateBookmarkInput{URL: "https://blog.example.com/post"},
			wantDesc:    "A scraped description",
			wantCover:   "https://blog.example.com/og.png",
			wantSources: []string{bookmark.SourceScrape},
			wantUpdated: true,
			wantScrape:  true,
		},
		{
			name:        "user values are kept",
			input:       bookmark.CreateBookmarkInput{URL: "https://blog.example.com/post", Description: "mine"},
			wantDesc:    "mine",
			wantCover:   "https://blog.example.com/og.png",
			wantSources: []string{bookmark.SourceScrape},
			wantUpdated: true,
			wantScrape:  true,
		},
		{
			name:        "fallback scrape only gets favicon",
			input:       bookmark.CreateBookmarkInput{URL: "https://down.example.com"},
			wantCover:   "favicon:down.example.com",
			wantSources: []string{bookmark.SourceFavicon},
			wantUpdated: true,
			wantScrape:  true,
		},
		{
			name:        "complete bookmark untouched",
			input:       bookmark.CreateBookmarkInput{URL: "https://a.com", Description: "d", CoverImage: "https://a.com/i.png"},
			wantDesc:    "d",
			wantCover:   "https://a.com/i.png",
			wantSources: []string{bookmark.SourceNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta.calls = nil
			uc, r := newTestUseCase(mustSeed(t), meta)
			s1, _ := setupTree(t, uc)
			tt.input.SubCategoryID = s1.ID
			b, err := uc.CreateBookmark(ctx, tt.input)
			if err != nil {
				t.Fatal(err)
			}

			out, err := uc.EnhanceBookmark(ctx, b.ID)
			if err != nil {
				t.Fatal(err)
			}
			if out.Updated != tt.wantUpdated {
				t.Errorf("updated = %v", out.Updated)
			}
			if strings.Join(out.Sources, ",") != strings.Join(tt.wantSources, ",") {
				t.Errorf("sources = %v, want %v", out.Sources, tt.wantSources)
			}
			if out.Bookmark.Description != tt.wantDesc {
				t.Errorf("description = %q, want %q", out.Bookmark.Description, tt.wantDesc)
			}

			wantCover := tt.wantCover
			if host, ok := strings.CutPrefix(wantCover, "favicon:"); ok {
				wantCover = "/api/proxy-image?url=" + url.QueryEscape("https://www.google.com/s2/favicons?domain="+host+"&sz=64")
			}
			if out.Bookmark.CoverImage != wantCover {
				t.Errorf("cover = %q, want %q", out.Bookmark.CoverImage, wantCover)
			}
			if stored := r.bookmarks[b.ID]; stored.CoverImage != out.Bookmark.CoverImage {
				t.Errorf("stored cover = %q", stored.CoverImage)
			}
			if scraped := len(meta.calls) > 0; scraped != tt.wantScrape {
				t.Errorf("scraped = %v, want %v", scraped, tt.wantScrape)
			}
		})
	}
}

func TestEnhanceBookmarkNotFound(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil)
	if _, err := uc.EnhanceBookmark(context.Background(), "missing"); !errors.Is(err, bookmark.ErrBookmarkNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestEnhanceAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	uc, r := newTestUseCase(mustSeed(t), &mockMeta{})
	s1, _ := setupTree(t, uc)

	for _, raw := range []string{"https://github.com/a", "https://github.com/b", "https://x.com"} {
		if _, err := uc.CreateBookmark(ctx, bookmark.CreateBookmarkInput{SubCategoryID: s1.ID, URL: raw}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := uc.CreateBookmark(ctx, bookmark.CreateBookmarkInput{SubCategoryID: s1.ID, URL: "https://done.com", Description: "d", CoverImage: "c"}); err != nil {
		t.Fatal(err)
	}

	done := make(chan bookmark.EnhanceSummary, 1)
	uc.onBatchDone = func(s bookmark.EnhanceSummary) { done <- s }

	job, err := uc.EnhanceAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// The batch must survive the request context.
	cancel()
	if job.Queued != 3 || job.ID == "" {
		t.Errorf("job = %+v", job)
	}

	select {
	case summary := <-done:
		if summary.JobID != job.ID || summary.Total != 3 || summary.Updated != 3 || summary.Failed != 0 {
			t.Errorf("summary = %+v", summary)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not finish")
	}

	for _, b := range r.bookmarks {
		if b.CoverImage == "" {
			t.Errorf("bookmark %s has no cover", b.URL)
		}
	}

	// Waiting for the flag reset avoids racing the deferred Store.
	deadline := time.Now().Add(time.Second)
	for uc.enhancing.Load() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if _, err := uc.EnhanceAll(context.Background()); err != nil {
		t.Errorf("second batch: %v", err)
	}
}

func TestEnhanceAllRejectsConcurrentBatch(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil)
	uc.enhancing.Store(true)
	if _, err := uc.EnhanceAll(context.Background()); !errors.Is(err, bookmark.ErrEnhanceRunning) {
		t.Errorf("err = %v", err)
	}
	if _, err := uc.EnhancePending(context.Background()); !errors.Is(err, bookmark.ErrEnhanceRunning) {
		t.Errorf("err = %v", err)
	}
}

func TestEnhancePending(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(mustSeed(t), nil)
	s1, _ := setupTree(t, uc)
	if _, err := uc.CreateBookmark(ctx, bookmark.CreateBookmarkInput{SubCategoryID: s1.ID, URL: "https://rust-lang.org"}); err != nil {
		t.Fatal(err)
	}

	summary, err := uc.EnhancePending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 1 || summary.Updated != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if uc.enhancing.Load() {
		t.Error("flag not released")
	}
}

func TestRunBatchKeepsEditsMadeAfterListing(t *testing.T) {
	ctx := context.Background()
	uc, r := newTestUseCase(mustSeed(t), nil)
	s1, _ := setupTree(t, uc)

	edited, err := uc.CreateBookmark(ctx, bookmark.CreateBookmarkInput{SubCategoryID: s1.ID, URL: "https://github.com/a"})
	if err != nil {
		t.Fatal(err)
	}
	gone, err := uc.CreateBookmark(ctx, bookmark.CreateBookmarkInput{SubCategoryID: s1.ID, URL: "https://github.com/b"})
	if err != nil {
		t.Fatal(err)
	}

	pending, err := uc.pendingBookmarks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}

	title, desc, tags := "My repo", "my own notes", []string{"work"}
	if _, err := uc.UpdateBookmark(ctx, bookmark.UpdateBookmarkInput{ID: edited.ID, Title: &title, Description: &desc, Tags: &tags}); err != nil {
		t.Fatal(err)
	}
	if err := uc.DeleteBookmark(ctx, gone.ID); err != nil {
		t.Fatal(err)
	}

	summary := uc.runBatch(ctx, pending)
	if summary.Total != 2 || summary.Updated != 1 || summary.Failed != 0 {
		t.Errorf("summary = %+v", summary)
	}

	got := r.bookmarks[edited.ID]
	if got.Title != title || got.Description != desc {
		t.Errorf("user edit lost: title %q description %q", got.Title, got.Description)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "work" {
		t.Errorf("tags = %v", got.Tags)
	}
	if !strings.Contains(got.CoverImage, url.QueryEscape("domain=github.com")) {
		t.Errorf("cover image = %q, want favicon fill", got.CoverImage)
	}
	if _, ok := r.bookmarks[gone.ID]; ok {
		t.Error("deleted bookmark was recreated")
	}
}
