package model

import "time"

// Category is the top level of the library hierarchy.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Position      int           `json:"position"`
	SubCategories []SubCategory `json:"subCategories"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// SubCategory groups bookmarks inside a Category.
type SubCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parentId"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// Bookmark is a saved link. URL keeps its fragment; duplicates are detected
// on the canonical form.
type Bookmark struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Description   string    `json:"description,omitempty"`
	CoverImage    string    `json:"coverImage,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	SubCategoryID string    `json:"subCategoryId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NeedsEnhancement reports whether description or cover image is missing.
func (b Bookmark) NeedsEnhancement() bool {
	return b.Description == "" || b.CoverImage == ""
}
