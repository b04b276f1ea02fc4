package sqlite

import (
	"strings"

	repo "bookmark-manager/internal/bookmark/repository"
)

var bookmarkOrderBy = map[string]string{
	"":                "created_at DESC",
	"created_at DESC": "created_at DESC",
	"created_at ASC":  "created_at ASC",
	"updated_at DESC": "updated_at DESC",
	"title ASC":       "title COLLATE NOCASE ASC",
}

// buildGetOneBookmarkQuery builds the WHERE clause for GetOneBookmark.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneBookmarkQuery(opt repo.GetOneBookmarkOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.SubCategoryID != "" {
		conditions = append(conditions, "sub_category_id = ?")
		args = append(args, opt.SubCategoryID)
	}
	if opt.URLKey != "" {
		conditions = append(conditions, "url_key = ?")
		args = append(args, opt.URLKey)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListBookmarksWhere builds the filter shared by the count and page queries.
func (r *implRepository) buildListBookmarksWhere(opt repo.ListBookmarksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.SubCategoryID != "" {
		conditions = append(conditions, "sub_category_id = ?")
		args = append(args, opt.SubCategoryID)
	}
	if tag := strings.TrimSpace(opt.Tag); tag != "" {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM json_each(bookmarks.tags) WHERE lower(json_each.value) = lower(?))")
		args = append(args, tag)
	}
	if q := strings.TrimSpace(opt.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		conditions = append(conditions, `(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR url LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}
	if opt.MissingDetails {
		conditions = append(conditions, "(description = '' OR cover_image = '')")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListBookmarksTail builds ORDER BY + LIMIT + OFFSET.
func (r *implRepository) buildListBookmarksTail(opt repo.ListBookmarksOptions) (string, []any) {
	orderBy, ok := bookmarkOrderBy[opt.OrderBy]
	if !ok {
		orderBy = bookmarkOrderBy[""]
	}
	parts := []string{"ORDER BY " + orderBy + ", id"}
	var args []any

	switch {
	case opt.Limit > 0:
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	case opt.Offset > 0:
		parts = append(parts, "LIMIT -1")
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}
	return strings.Join(parts, " "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
