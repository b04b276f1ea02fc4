package repository

import "time"

// CreateCategoryOptions holds parameters for inserting a Category.
// A zero CreatedAt means now.
type CreateCategoryOptions struct {
	ID        string
	Name      string
	Position  int
	CreatedAt time.Time
}

// GetOneCategoryOptions filters by all non-empty fields (AND).
// Name matches case-insensitively.
type GetOneCategoryOptions struct {
	ID   string
	Name string
}

type UpdateCategoryOptions struct {
	ID       string
	Name     string
	Position int
}

type CreateSubCategoryOptions struct {
	ID        string
	ParentID  string
	Name      string
	Position  int
	CreatedAt time.Time
}

// GetOneSubCategoryOptions filters by all non-empty fields (AND).
type GetOneSubCategoryOptions struct {
	ID       string
	ParentID string
	Name     string
}

// ListSubCategoriesOptions lists all sub-categories when ParentID is empty.
type ListSubCategoriesOptions struct {
	ParentID string
}

type UpdateSubCategoryOptions struct {
	ID       string
	ParentID string
	Name     string
	Position int
}

// CreateBookmarkOptions holds parameters for inserting a Bookmark. URLKey is
// the canonical form of URL and is unique per sub-category.
type CreateBookmarkOptions struct {
	ID            string
	SubCategoryID string
	Title         string
	URL           string
	URLKey        string
	Description   string
	CoverImage    string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GetOneBookmarkOptions filters by all non-empty fields (AND).
type GetOneBookmarkOptions struct {
	ID            string
	SubCategoryID string
	URLKey        string
}

// ListBookmarksOptions holds filters and pagination. Limit 0 means no limit.
type ListBookmarksOptions struct {
	SubCategoryID string
	Tag           string
	Query         string
	// MissingDetails selects bookmarks lacking a description or cover image.
	MissingDetails bool
	Limit          int
	Offset         int
	OrderBy        string
}

// UpdateBookmarkOptions replaces every mutable column.
type UpdateBookmarkOptions struct {
	ID            string
	SubCategoryID string
	Title         string
	URL           string
	URLKey        string
	Description   string
	CoverImage    string
	Tags          []string
}

// FillBookmarkDetailsOptions sets Description and CoverImage only where the
// stored column is still empty. Empty values leave the column alone.
type FillBookmarkDetailsOptions struct {
	ID          string
	Description string
	CoverImage  string
}
