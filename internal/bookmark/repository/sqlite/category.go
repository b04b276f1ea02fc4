package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	repo "bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/internal/model"
)

const categoryColumns = `id, name, position, created_at`

// CreateCategory inserts a new Category row and returns it.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	const query = `INSERT INTO categories (id, name, position, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.Name, opt.Position, createdAt.UTC()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repo.ErrFailedToInsert
	}
	return r.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: opt.ID})
}

// GetOneCategory returns a zero-value Category (ID == "") when not found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (model.Category, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name = ? COLLATE NOCASE")
		args = append(args, opt.Name)
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM categories WHERE %s ORDER BY position, created_at LIMIT 1`, categoryColumns, where)
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListCategories returns every category ordered by position.
func (r *implRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories ORDER BY position, created_at`, categoryColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCategories"), err)
			return nil, repo.ErrFailedToList
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	return categories, nil
}

// UpdateCategory returns a zero-value Category when the id does not exist.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	const query = `UPDATE categories SET name = ?, position = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, opt.Name, opt.Position, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Category{}, nil
	}
	return r.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: opt.ID})
}

// DeleteCategory removes a Category; sub-categories and bookmarks cascade.
func (r *implRepository) DeleteCategory(ctx context.Context, id string) error {
	const query = `DELETE FROM categories WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (model.Category, error) {
	var c model.Category
	err := s.Scan(&c.ID, &c.Name, &c.Position, &c.CreatedAt)
	return c, err
}
