package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	repo "bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/pkg/log"
	pkgSQLite "bookmark-manager/pkg/sqlite"
)

func newTestRepo(t *testing.T) (*implRepository, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := pkgSQLite.Connect(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Running twice must be harmless.
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	return New(db, log.NewNop()).(*implRepository), db
}

func seedTree(t *testing.T, r *implRepository) {
	t.Helper()
	ctx := context.Background()
	if _, err := r.CreateCategory(ctx, repo.CreateCategoryOptions{ID: "c1", Name: "Dev"}); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := r.CreateSubCategory(ctx, repo.CreateSubCategoryOptions{ID: "s1", ParentID: "c1", Name: "Go"}); err != nil {
		t.Fatalf("create sub-category: %v", err)
	}
	if _, err := r.CreateSubCategory(ctx, repo.CreateSubCategoryOptions{ID: "s2", ParentID: "c1", Name: "Rust", Position: 1}); err != nil {
		t.Fatalf("create sub-category: %v", err)
	}
}

func TestCategoryCRUD(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateCategory(ctx, repo.CreateCategoryOptions{ID: "c1", Name: "Reading", Position: 2})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.ID != "c1" || created.Name != "Reading" || created.Position != 2 {
		t.Fatalf("unexpected category %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	t.Run("get by name is case-insensitive", func(t *testing.T) {
		got, err := r.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: "reading"})
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != "c1" {
			t.Errorf("got %q, want c1", got.ID)
		}
	})

	t.Run("missing returns zero value", func(t *testing.T) {
		got, err := r.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: "nope"})
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != "" {
			t.Errorf("expected zero value, got %+v", got)
		}
	})

	t.Run("update", func(t *testing.T) {
		got, err := r.UpdateCategory(ctx, repo.UpdateCategoryOptions{ID: "c1", Name: "Later", Position: 0})
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "Later" || got.Position != 0 {
			t.Errorf("unexpected %+v", got)
		}
		missing, err := r.UpdateCategory(ctx, repo.UpdateCategoryOptions{ID: "nope", Name: "x"})
		if err != nil {
			t.Fatal(err)
		}
		if missing.ID != "" {
			t.Errorf("expected zero value for missing id")
		}
	})

	t.Run("list", func(t *testing.T) {
		if _, err := r.CreateCategory(ctx, repo.CreateCategoryOptions{ID: "c0", Name: "First", Position: -1}); err != nil {
			t.Fatal(err)
		}
		list, err := r.ListCategories(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 2 || list[0].ID != "c0" {
			t.Errorf("unexpected order %+v", list)
		}
	})
}

func TestDeleteCategoryCascades(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	seedTree(t, r)

	if _, err := r.CreateBookmark(ctx, repo.CreateBookmarkOptions{ID: "b1", SubCategoryID: "s1", Title: "Go", URL: "https://go.dev/"}); err != nil {
		t.Fatal(err)
	}
	if err := r.DeleteCategory(ctx, "c1"); err != nil {
		t.Fatal(err)
	}

	subs, err := r.ListSubCategories(ctx, repo.ListSubCategoriesOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 0 {
		t.Errorf("sub-categories survived: %+v", subs)
	}
	b, err := r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: "b1"})
	if err != nil {
		t.Fatal(err)
	}
	if b.ID != "" {
		t.Error("bookmark survived category delete")
	}
}

func TestSubCategories(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	seedTree(t, r)
	if _, err := r.CreateCategory(ctx, repo.CreateCategoryOptions{ID: "c2", Name: "Other"}); err != nil {
		t.Fatal(err)
	}

	t.Run("list by parent is ordered", func(t *testing.T) {
		subs, err := r.ListSubCategories(ctx, repo.ListSubCategoriesOptions{ParentID: "c1"})
		if err != nil {
			t.Fatal(err)
		}
		if len(subs) != 2 || subs[0].ID != "s1" || subs[1].ID != "s2" {
			t.Errorf("unexpected %+v", subs)
		}
	})

	t.Run("move to another category", func(t *testing.T) {
		got, err := r.UpdateSubCategory(ctx, repo.UpdateSubCategoryOptions{ID: "s2", ParentID: "c2", Name: "Rust", Position: 0})
		if err != nil {
			t.Fatal(err)
		}
		if got.ParentID != "c2" {
			t.Errorf("parent = %q", got.ParentID)
		}
	})

	t.Run("unknown parent violates foreign key", func(t *testing.T) {
		_, err := r.CreateSubCategory(ctx, repo.CreateSubCategoryOptions{ID: "s9", ParentID: "missing", Name: "x"})
		if err != repo.ErrFailedToInsert {
			t.Errorf("err = %v, want ErrFailedToInsert", err)
		}
	})

	t.Run("get by parent and name", func(t *testing.T) {
		got, err := r.GetOneSubCategory(ctx, repo.GetOneSubCategoryOptions{ParentID: "c1", Name: "GO"})
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != "s1" {
			t.Errorf("got %q", got.ID)
		}
	})
}

func TestBookmarks(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	seedTree(t, r)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixtures := []repo.CreateBookmarkOptions{
		{ID: "b1", SubCategoryID: "s1", Title: "Go", URL: "https://go.dev/", Description: "The Go language", CoverImage: "https://go.dev/img.png", Tags: []string{"lang", "Google"}, CreatedAt: base},
		{ID: "b2", SubCategoryID: "s1", Title: "Effective Go", URL: "https://go.dev/doc/effective_go", Tags: []string{"docs"}, CreatedAt: base.Add(time.Hour)},
		{ID: "b3", SubCategoryID: "s2", Title: "Rust 100%", URL: "https://www.rust-lang.org/", Description: "systems", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, f := range fixtures {
		if _, err := r.CreateBookmark(ctx, f); err != nil {
			t.Fatalf("CreateBookmark %s: %v", f.ID, err)
		}
	}

	t.Run("tags round trip", func(t *testing.T) {
		b, err := r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: "b1"})
		if err != nil {
			t.Fatal(err)
		}
		if len(b.Tags) != 2 || b.Tags[0] != "lang" || b.Tags[1] != "Google" {
			t.Errorf("tags = %v", b.Tags)
		}
		if !b.CreatedAt.Equal(base) {
			t.Errorf("created_at = %v", b.CreatedAt)
		}
		empty, _ := r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: "b3"})
		if empty.Tags != nil {
			t.Errorf("expected nil tags, got %v", empty.Tags)
		}
	})

	t.Run("duplicate url in same sub-category", func(t *testing.T) {
		_, err := r.CreateBookmark(ctx, repo.CreateBookmarkOptions{ID: "dup", SubCategoryID: "s1", Title: "x", URL: "https://go.dev/"})
		if err != repo.ErrDuplicate {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})

	t.Run("same url in another sub-category is allowed", func(t *testing.T) {
		if _, err := r.CreateBookmark(ctx, repo.CreateBookmarkOptions{ID: "b4", SubCategoryID: "s2", Title: "Go", URL: "https://go.dev/"}); err != nil {
			t.Fatal(err)
		}
		if err := r.DeleteBookmark(ctx, "b4"); err != nil {
			t.Fatal(err)
		}
	})

	tests := []struct {
		name  string
		opt   repo.ListBookmarksOptions
		ids   []string
		total int
	}{
		{name: "all newest first", opt: repo.ListBookmarksOptions{}, ids: []string{"b3", "b2", "b1"}, total: 3},
		{name: "by sub-category", opt: repo.ListBookmarksOptions{SubCategoryID: "s1"}, ids: []string{"b2", "b1"}, total: 2},
		{name: "by tag case-insensitive", opt: repo.ListBookmarksOptions{Tag: "google"}, ids: []string{"b1"}, total: 1},
		{name: "query matches title", opt: repo.ListBookmarksOptions{Query: "effective"}, ids: []string{"b2"}, total: 1},
		{name: "query matches description", opt: repo.ListBookmarksOptions{Query: "language"}, ids: []string{"b1"}, total: 1},
		{name: "query escapes wildcard", opt: repo.ListBookmarksOptions{Query: "100%"}, ids: []string{"b3"}, total: 1},
		{name: "underscore is literal", opt: repo.ListBookmarksOptions{Query: "effective_go"}, ids: []string{"b2"}, total: 1},
		{name: "missing details", opt: repo.ListBookmarksOptions{MissingDetails: true}, ids: []string{"b3", "b2"}, total: 2},
		{name: "paged", opt: repo.ListBookmarksOptions{Limit: 1, Offset: 1}, ids: []string{"b2"}, total: 3},
		{name: "offset only", opt: repo.ListBookmarksOptions{Offset: 2}, ids: []string{"b1"}, total: 3},
		{name: "oldest first", opt: repo.ListBookmarksOptions{OrderBy: "created_at ASC"}, ids: []string{"b1", "b2", "b3"}, total: 3},
		{name: "unknown order falls back", opt: repo.ListBookmarksOptions{OrderBy: "1; DROP TABLE bookmarks"}, ids: []string{"b3", "b2", "b1"}, total: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, total, err := r.ListBookmarks(ctx, tt.opt)
			if err != nil {
				t.Fatal(err)
			}
			if total != tt.total {
				t.Errorf("total = %d, want %d", total, tt.total)
			}
			if len(list) != len(tt.ids) {
				t.Fatalf("got %d bookmarks, want %d", len(list), len(tt.ids))
			}
			for i, id := range tt.ids {
				if list[i].ID != id {
					t.Errorf("[%d] = %s, want %s", i, list[i].ID, id)
				}
			}
		})
	}

	t.Run("update moves and detects duplicates", func(t *testing.T) {
		got, err := r.UpdateBookmark(ctx, repo.UpdateBookmarkOptions{ID: "b2", SubCategoryID: "s2", Title: "Effective Go", URL: "https://go.dev/doc/effective_go", Tags: []string{"docs"}})
		if err != nil {
			t.Fatal(err)
		}
		if got.SubCategoryID != "s2" || !got.UpdatedAt.After(got.CreatedAt) {
			t.Errorf("unexpected %+v", got)
		}
		_, err = r.UpdateBookmark(ctx, repo.UpdateBookmarkOptions{ID: "b2", SubCategoryID: "s2", Title: "x", URL: "https://www.rust-lang.org/"})
		if err != repo.ErrDuplicate {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})

	t.Run("delete sub-category cascades", func(t *testing.T) {
		if err := r.DeleteSubCategory(ctx, "s2"); err != nil {
			t.Fatal(err)
		}
		_, total, err := r.ListBookmarks(ctx, repo.ListBookmarksOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if total != 1 {
			t.Errorf("total = %d, want 1", total)
		}
	})
}

func TestBookmarkURLKey(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	seedTree(t, r)

	for _, f := range []repo.CreateBookmarkOptions{
		{ID: "r1", SubCategoryID: "s1", Title: "Reports", URL: "https://app.example.com/#/reports/42", URLKey: "https://app.example.com/#/reports/42"},
		{ID: "r2", SubCategoryID: "s1", Title: "Settings", URL: "https://app.example.com/#/settings", URLKey: "https://app.example.com/#/settings"},
		{ID: "r3", SubCategoryID: "s1", Title: "Docs", URL: "https://example.com/docs#install", URLKey: "https://example.com/docs"},
	} {
		if _, err := r.CreateBookmark(ctx, f); err != nil {
			t.Fatalf("CreateBookmark %s: %v", f.ID, err)
		}
	}

	t.Run("stored url keeps fragment", func(t *testing.T) {
		b, err := r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: "r3"})
		if err != nil {
			t.Fatal(err)
		}
		if b.URL != "https://example.com/docs#install" {
			t.Errorf("url = %q", b.URL)
		}
	})

	t.Run("lookup by key", func(t *testing.T) {
		b, err := r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{SubCategoryID: "s1", URLKey: "https://example.com/docs"})
		if err != nil {
			t.Fatal(err)
		}
		if b.ID != "r3" {
			t.Errorf("id = %q, want r3", b.ID)
		}
	})

	t.Run("same key is a duplicate", func(t *testing.T) {
		_, err := r.CreateBookmark(ctx, repo.CreateBookmarkOptions{ID: "r4", SubCategoryID: "s1", Title: "x", URL: "https://example.com/docs#usage", URLKey: "https://example.com/docs"})
		if err != repo.ErrDuplicate {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})
}

func TestFillBookmarkDetails(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	seedTree(t, r)

	if _, err := r.CreateBookmark(ctx, repo.CreateBookmarkOptions{ID: "b1", SubCategoryID: "s1", Title: "Go", URL: "https://go.dev/", Description: "mine"}); err != nil {
		t.Fatal(err)
	}

	got, err := r.FillBookmarkDetails(ctx, repo.FillBookmarkDetailsOptions{ID: "b1", Description: "scraped", CoverImage: "https://go.dev/og.png"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "mine" {
		t.Errorf("description = %q, want user value kept", got.Description)
	}
	if got.CoverImage != "https://go.dev/og.png" {
		t.Errorf("cover image = %q", got.CoverImage)
	}
	if got.Title != "Go" {
		t.Errorf("title = %q", got.Title)
	}

	before := got.UpdatedAt
	again, err := r.FillBookmarkDetails(ctx, repo.FillBookmarkDetailsOptions{ID: "b1", Description: "other", CoverImage: "https://other/og.png"})
	if err != nil {
		t.Fatal(err)
	}
	if again.CoverImage != "https://go.dev/og.png" || !again.UpdatedAt.Equal(before) {
		t.Errorf("filled columns changed: %+v", again)
	}

	missing, err := r.FillBookmarkDetails(ctx, repo.FillBookmarkDetailsOptions{ID: "nope", Description: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if missing.ID != "" {
		t.Errorf("expected zero bookmark, got %+v", missing)
	}
}

func TestMigrateAddsURLKey(t *testing.T) {
	ctx := context.Background()
	db, err := pkgSQLite.Connect(ctx, filepath.Join(t.TempDir(), "old.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, stmt := range []string{
		`CREATE TABLE bookmarks (
			id TEXT PRIMARY KEY, sub_category_id TEXT NOT NULL, title TEXT NOT NULL, url TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '', cover_image TEXT NOT NULL DEFAULT '', tags TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL)`,
		`CREATE UNIQUE INDEX idx_bookmarks_sub_category_url ON bookmarks(sub_category_id, url)`,
		`INSERT INTO bookmarks (id, sub_category_id, title, url, created_at, updated_at)
			VALUES ('old', 's1', 'Go', 'https://go.dev/', '2024-01-01 00:00:00', '2024-01-01 00:00:00')`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("seed old schema: %v", err)
		}
	}

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	r := New(db, log.NewNop()).(*implRepository)
	b, err := r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{SubCategoryID: "s1", URLKey: "https://go.dev/"})
	if err != nil {
		t.Fatal(err)
	}
	if b.ID != "old" {
		t.Errorf("id = %q, want old row keyed by its url", b.ID)
	}
}
