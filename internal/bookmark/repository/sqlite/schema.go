package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sub_categories (
		id         TEXT PRIMARY KEY,
		parent_id  TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sub_categories_parent ON sub_categories(parent_id)`,
	`CREATE TABLE IF NOT EXISTS bookmarks (
		id              TEXT PRIMARY KEY,
		sub_category_id TEXT NOT NULL REFERENCES sub_categories(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		url             TEXT NOT NULL,
		url_key         TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		cover_image     TEXT NOT NULL DEFAULT '',
		tags            TEXT NOT NULL DEFAULT '[]',
		created_at      DATETIME NOT NULL,
		updated_at      DATETIME NOT NULL
	)`,
}

var indexes = []string{
	`DROP INDEX IF EXISTS idx_bookmarks_sub_category_url`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookmarks_sub_category_url_key ON bookmarks(sub_category_id, url_key)`,
	`CREATE INDEX IF NOT EXISTS idx_bookmarks_created_at ON bookmarks(created_at)`,
}

// Migrate creates the schema and upgrades databases created before url_key
// existed. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrate begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	if err := addURLKey(ctx, tx); err != nil {
		return fmt.Errorf("migrate url_key: %w", err)
	}
	for _, stmt := range indexes {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return tx.Commit()
}

// addURLKey adds the url_key column to an older bookmarks table. Old rows
// stored the canonical URL, so it doubles as their key.
func addURLKey(ctx context.Context, tx *sql.Tx) error {
	has, err := hasColumn(ctx, tx, "bookmarks", "url_key")
	if err != nil || has {
		return err
	}
	if _, err := tx.ExecContext(ctx, `ALTER TABLE bookmarks ADD COLUMN url_key TEXT NOT NULL DEFAULT ''`); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `UPDATE bookmarks SET url_key = url WHERE url_key = ''`)
	return err
}

func hasColumn(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf(`SELECT name FROM pragma_table_info('%s')`, table))
	if err != nil {
		return false, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
