package bookmark

import (
	"context"
	"io"

	"bookmark-manager/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Categories
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (model.Category, error)
	UpdateCategory(ctx context.Context, input UpdateCategoryInput) (model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Sub-categories
	CreateSubCategory(ctx context.Context, input CreateSubCategoryInput) (model.SubCategory, error)
	UpdateSubCategory(ctx context.Context, input UpdateSubCategoryInput) (model.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id string) error

	// Bookmarks
	ListBookmarks(ctx context.Context, input ListBookmarksInput) (ListBookmarksOutput, error)
	CreateBookmark(ctx context.Context, input CreateBookmarkInput) (model.Bookmark, error)
	DetailBookmark(ctx context.Context, id string) (model.Bookmark, error)
	UpdateBookmark(ctx context.Context, input UpdateBookmarkInput) (model.Bookmark, error)
	DeleteBookmark(ctx context.Context, id string) error

	// Enhancement
	EnhanceBookmark(ctx context.Context, id string) (EnhanceOutput, error)
	// EnhanceAll starts a background batch over bookmarks missing details.
	EnhanceAll(ctx context.Context) (EnhanceJob, error)
	// EnhancePending runs the same batch synchronously.
	EnhancePending(ctx context.Context) (EnhanceSummary, error)

	// Import / export
	Export(ctx context.Context) (ExportData, error)
	Import(ctx context.Context, data ExportData) (ImportResult, error)
	ExportHTML(ctx context.Context, w io.Writer) error
	ImportHTML(ctx context.Context, r io.Reader) (ImportResult, error)
}
