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

const subCategoryColumns = `id, parent_id, name, position, created_at`

// CreateSubCategory inserts a new SubCategory row and returns it.
func (r *implRepository) CreateSubCategory(ctx context.Context, opt repo.CreateSubCategoryOptions) (model.SubCategory, error) {
	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	const query = `INSERT INTO sub_categories (id, parent_id, name, position, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.ParentID, opt.Name, opt.Position, createdAt.UTC()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSubCategory"), err)
		return model.SubCategory{}, repo.ErrFailedToInsert
	}
	return r.GetOneSubCategory(ctx, repo.GetOneSubCategoryOptions{ID: opt.ID})
}

// GetOneSubCategory returns a zero-value SubCategory (ID == "") when not found.
func (r *implRepository) GetOneSubCategory(ctx context.Context, opt repo.GetOneSubCategoryOptions) (model.SubCategory, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.ParentID != "" {
		conditions = append(conditions, "parent_id = ?")
		args = append(args, opt.ParentID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name = ? COLLATE NOCASE")
		args = append(args, opt.Name)
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM sub_categories WHERE %s ORDER BY position, created_at LIMIT 1`, subCategoryColumns, where)
	s, err := scanSubCategory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.SubCategory{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSubCategory"), err)
		return model.SubCategory{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSubCategories returns sub-categories ordered by parent and position.
func (r *implRepository) ListSubCategories(ctx context.Context, opt repo.ListSubCategoriesOptions) ([]model.SubCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM sub_categories`, subCategoryColumns)
	var args []any
	if opt.ParentID != "" {
		query += ` WHERE parent_id = ?`
		args = append(args, opt.ParentID)
	}
	query += ` ORDER BY parent_id, position, created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSubCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	subs := make([]model.SubCategory, 0)
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSubCategories"), err)
			return nil, repo.ErrFailedToList
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSubCategories"), err)
		return nil, repo.ErrFailedToList
	}
	return subs, nil
}

// UpdateSubCategory returns a zero-value SubCategory when the id does not exist.
func (r *implRepository) UpdateSubCategory(ctx context.Context, opt repo.UpdateSubCategoryOptions) (model.SubCategory, error) {
	const query = `UPDATE sub_categories SET parent_id = ?, name = ?, position = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, opt.ParentID, opt.Name, opt.Position, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSubCategory"), err)
		return model.SubCategory{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.SubCategory{}, nil
	}
	return r.GetOneSubCategory(ctx, repo.GetOneSubCategoryOptions{ID: opt.ID})
}

// DeleteSubCategory removes a SubCategory; its bookmarks cascade.
func (r *implRepository) DeleteSubCategory(ctx context.Context, id string) error {
	const query = `DELETE FROM sub_categories WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSubCategory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func scanSubCategory(s scanner) (model.SubCategory, error) {
	var sc model.SubCategory
	err := s.Scan(&sc.ID, &sc.ParentID, &sc.Name, &sc.Position, &sc.CreatedAt)
	return sc, err
}
