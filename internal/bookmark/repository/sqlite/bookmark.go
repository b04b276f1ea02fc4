package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	repo "bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/internal/model"
)

const bookmarkColumns = `id, sub_category_id, title, url, description, cover_image, tags, created_at, updated_at`

// CreateBookmark inserts a new Bookmark row. A (sub_category_id, url_key) clash
// returns repo.ErrDuplicate.
func (r *implRepository) CreateBookmark(ctx context.Context, opt repo.CreateBookmarkOptions) (model.Bookmark, error) {
	now := time.Now().UTC()
	createdAt, updatedAt := opt.CreatedAt, opt.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	const query = `
		INSERT INTO bookmarks (id, sub_category_id, title, url, url_key, description, cover_image, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.SubCategoryID, opt.Title, opt.URL, keyOrURL(opt.URLKey, opt.URL), opt.Description, opt.CoverImage,
		encodeTags(opt.Tags), createdAt.UTC(), updatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return model.Bookmark{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBookmark"), err)
		return model.Bookmark{}, repo.ErrFailedToInsert
	}
	return r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: opt.ID})
}

// GetOneBookmark returns a zero-value Bookmark (ID == "") when not found.
func (r *implRepository) GetOneBookmark(ctx context.Context, opt repo.GetOneBookmarkOptions) (model.Bookmark, error) {
	where, args := r.buildGetOneBookmarkQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM bookmarks WHERE %s LIMIT 1`, bookmarkColumns, where)

	b, err := scanBookmark(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bookmark{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBookmark"), err)
		return model.Bookmark{}, repo.ErrFailedToGet
	}
	return b, nil
}

// ListBookmarks returns a page of bookmarks and the total matching count.
func (r *implRepository) ListBookmarks(ctx context.Context, opt repo.ListBookmarksOptions) ([]model.Bookmark, int, error) {
	where, args := r.buildListBookmarksWhere(opt)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bookmarks WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListBookmarks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	tail, tailArgs := r.buildListBookmarksTail(opt)
	query := fmt.Sprintf(`SELECT %s FROM bookmarks WHERE %s %s`, bookmarkColumns, where, tail)
	rows, err := r.db.QueryContext(ctx, query, append(args, tailArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookmarks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	bookmarks := make([]model.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookmarks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBookmarks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return bookmarks, total, nil
}

// UpdateBookmark overwrites a Bookmark and bumps updated_at. It returns a
// zero-value Bookmark when the id does not exist.
func (r *implRepository) UpdateBookmark(ctx context.Context, opt repo.UpdateBookmarkOptions) (model.Bookmark, error) {
	const query = `
		UPDATE bookmarks
		SET sub_category_id = ?, title = ?, url = ?, url_key = ?, description = ?, cover_image = ?, tags = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		opt.SubCategoryID, opt.Title, opt.URL, keyOrURL(opt.URLKey, opt.URL), opt.Description, opt.CoverImage,
		encodeTags(opt.Tags), time.Now().UTC(), opt.ID,
	)
	if isUniqueViolation(err) {
		return model.Bookmark{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookmark"), err)
		return model.Bookmark{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Bookmark{}, nil
	}
	return r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: opt.ID})
}

// FillBookmarkDetails writes description and cover_image only into columns
// that are still empty, so a concurrent user edit always wins. updated_at is
// bumped only when something changed.
func (r *implRepository) FillBookmarkDetails(ctx context.Context, opt repo.FillBookmarkDetailsOptions) (model.Bookmark, error) {
	const query = `
		UPDATE bookmarks
		SET description = CASE WHEN description = '' THEN ? ELSE description END,
			cover_image = CASE WHEN cover_image = '' THEN ? ELSE cover_image END,
			updated_at = ?
		WHERE id = ?
			AND ((description = '' AND ? <> '') OR (cover_image = '' AND ? <> ''))`
	_, err := r.db.ExecContext(ctx, query,
		opt.Description, opt.CoverImage, time.Now().UTC(), opt.ID,
		opt.Description, opt.CoverImage,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FillBookmarkDetails"), err)
		return model.Bookmark{}, repo.ErrFailedToUpdate
	}
	return r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: opt.ID})
}

// DeleteBookmark removes a Bookmark by ID.
func (r *implRepository) DeleteBookmark(ctx context.Context, id string) error {
	const query = `DELETE FROM bookmarks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBookmark"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func scanBookmark(s scanner) (model.Bookmark, error) {
	var (
		b    model.Bookmark
		tags string
	)
	err := s.Scan(&b.ID, &b.SubCategoryID, &b.Title, &b.URL, &b.Description, &b.CoverImage, &tags, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Bookmark{}, err
	}
	b.Tags = decodeTags(tags)
	return b, nil
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeTags(raw string) []string {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || len(tags) == 0 {
		return nil
	}
	return tags
}

func keyOrURL(key, url string) string {
	if key == "" {
		return url
	}
	return key
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
