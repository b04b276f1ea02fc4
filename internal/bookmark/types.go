package bookmark

import (
	"time"

	"bookmark-manager/internal/model"
)

// ExportVersion is the current JSON export format version.
const ExportVersion = 1

// Catch-all folder names used when imported links have no folder.
const (
	ImportedCategoryName = "Imported"
	UnsortedSubName      = "Unsorted"
)

// --- Category ---

type CreateCategoryInput struct {
	Name     string
	Position *int
}

type UpdateCategoryInput struct {
	ID       string
	Name     *string
	Position *int
}

// --- SubCategory ---

type CreateSubCategoryInput struct {
	CategoryID string
	Name       string
	Position   *int
}

// UpdateSubCategoryInput may move the sub-category to another category via ParentID.
type UpdateSubCategoryInput struct {
	ID       string
	Name     *string
	ParentID *string
	Position *int
}

// --- Bookmark ---

type CreateBookmarkInput struct {
	Title         string
	URL           string
	Description   string
	CoverImage    string
	Tags          []string
	SubCategoryID string
}

// UpdateBookmarkInput is a partial update: nil fields keep their value.
type UpdateBookmarkInput struct {
	ID            string
	Title         *string
	URL           *string
	Description   *string
	CoverImage    *string
	Tags          *[]string
	SubCategoryID *string
}

type ListBookmarksInput struct {
	SubCategoryID string
	Tag           string
	Query         string
	Limit         int
	Offset        int
}

type ListBookmarksOutput struct {
	Bookmarks []model.Bookmark
	Total     int
	Limit     int
	Offset    int
}

// --- Enhancement ---

// Enhancement sources reported in EnhanceOutput.
const (
	SourceSeed    = "seed"
	SourceScrape  = "scrape"
	SourceFavicon = "favicon"
	SourceNone    = "none"
)

type EnhanceOutput struct {
	Bookmark model.Bookmark
	Updated  bool
	Sources  []string
}

// EnhanceJob describes a background batch enhancement.
type EnhanceJob struct {
	ID        string    `json:"id"`
	Queued    int       `json:"queued"`
	StartedAt time.Time `json:"startedAt"`
}

// EnhanceSummary is the outcome of a finished batch.
type EnhanceSummary struct {
	JobID   string
	Total   int
	Updated int
	Failed  int
}

// --- Import / export ---

// ExportData is the JSON export document.
type ExportData struct {
	Version    int              `json:"version"`
	ExportedAt time.Time        `json:"exportedAt"`
	Categories []model.Category `json:"categories"`
	Bookmarks  []model.Bookmark `json:"bookmarks"`
}

type ImportResult struct {
	CategoriesCreated    int `json:"categoriesCreated"`
	SubCategoriesCreated int `json:"subCategoriesCreated"`
	BookmarksCreated     int `json:"bookmarksCreated"`
	BookmarksSkipped     int `json:"bookmarksSkipped"`
}

// Add accumulates another result.
func (r *ImportResult) Add(o ImportResult) {
	r.CategoriesCreated += o.CategoriesCreated
	r.SubCategoriesCreated += o.SubCategoriesCreated
	r.BookmarksCreated += o.BookmarksCreated
	r.BookmarksSkipped += o.BookmarksSkipped
}
