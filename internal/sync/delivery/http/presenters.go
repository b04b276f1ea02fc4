package http

import (
	"time"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/internal/sync"
)

type pushResp struct {
	UserID     string    `json:"userId"`
	Categories int       `json:"categories"`
	Bookmarks  int       `json:"bookmarks"`
	PushedAt   time.Time `json:"pushedAt"`
}

func (h *handler) newPushResp(out sync.PushOutput) pushResp {
	return pushResp{
		UserID:     out.UserID,
		Categories: out.Categories,
		Bookmarks:  out.Bookmarks,
		PushedAt:   out.PushedAt,
	}
}

type pullResp struct {
	UserID    string                `json:"userId"`
	UpdatedAt time.Time             `json:"updatedAt"`
	Result    bookmark.ImportResult `json:"result"`
}

func (h *handler) newPullResp(out sync.PullOutput) pullResp {
	return pullResp{
		UserID:    out.UserID,
		UpdatedAt: out.UpdatedAt,
		Result:    out.Result,
	}
}
