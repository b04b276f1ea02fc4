package sqlite

import (
	"database/sql"
	"fmt"

	"bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the library domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("bookmark/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("bookmark/repository/sqlite.%s", method)
}
