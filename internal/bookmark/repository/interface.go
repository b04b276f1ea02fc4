package repository

import (
	"context"

	"bookmark-manager/internal/model"
)

// Repository is the composed interface for the library data store.
type Repository interface {
	CategoryRepository
	SubCategoryRepository
	BookmarkRepository
}

// CategoryRepository defines data access for categories. Returned categories
// do not carry sub-categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (model.Category, error)
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type SubCategoryRepository interface {
	CreateSubCategory(ctx context.Context, opt CreateSubCategoryOptions) (model.SubCategory, error)
	GetOneSubCategory(ctx context.Context, opt GetOneSubCategoryOptions) (model.SubCategory, error)
	ListSubCategories(ctx context.Context, opt ListSubCategoriesOptions) ([]model.SubCategory, error)
	UpdateSubCategory(ctx context.Context, opt UpdateSubCategoryOptions) (model.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id string) error
}

type BookmarkRepository interface {
	CreateBookmark(ctx context.Context, opt CreateBookmarkOptions) (model.Bookmark, error)
	GetOneBookmark(ctx context.Context, opt GetOneBookmarkOptions) (model.Bookmark, error)
	ListBookmarks(ctx context.Context, opt ListBookmarksOptions) ([]model.Bookmark, int, error)
	UpdateBookmark(ctx context.Context, opt UpdateBookmarkOptions) (model.Bookmark, error)
	// FillBookmarkDetails returns the zero Bookmark when id does not exist.
	FillBookmarkDetails(ctx context.Context, opt FillBookmarkDetailsOptions) (model.Bookmark, error)
	DeleteBookmark(ctx context.Context, id string) error
}
