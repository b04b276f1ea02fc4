package sync

import (
	"time"

	"bookmark-manager/internal/bookmark"
)

type PushOutput struct {
	UserID     string
	Categories int
	Bookmarks  int
	PushedAt   time.Time
}

type PullOutput struct {
	UserID    string
	UpdatedAt time.Time
	Result    bookmark.ImportResult
}
