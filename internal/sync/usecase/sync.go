package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/internal/sync"
	"bookmark-manager/pkg/remote"
)

const (
	opPush = "push"
	opPull = "pull"
)

func (uc *implUseCase) Enabled() bool {
	return uc.remote != nil && uc.remote.Enabled()
}

func (uc *implUseCase) Push(ctx context.Context) (sync.PushOutput, error) {
	if !uc.Enabled() {
		return sync.PushOutput{}, sync.ErrSyncDisabled
	}

	data, err := uc.library.Export(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Push Export: %v", err)
		uc.metrics.Sync(opPush, "error")
		return sync.PushOutput{}, err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Push Marshal: %v", err)
		uc.metrics.Sync(opPush, "error")
		return sync.PushOutput{}, err
	}

	snap, err := uc.remote.Push(ctx, raw)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Push Push: %v", err)
		uc.metrics.Sync(opPush, "error")
		return sync.PushOutput{}, mapRemoteError(err)
	}

	uc.metrics.Sync(opPush, "ok")
	uc.l.Infof(ctx, "uc.Push: pushed %d categories and %d bookmarks for %s",
		len(data.Categories), len(data.Bookmarks), snap.UserID)
	return sync.PushOutput{
		UserID:     snap.UserID,
		Categories: len(data.Categories),
		Bookmarks:  len(data.Bookmarks),
		PushedAt:   snap.UpdatedAt,
	}, nil
}

func (uc *implUseCase) Pull(ctx context.Context) (sync.PullOutput, error) {
	if !uc.Enabled() {
		return sync.PullOutput{}, sync.ErrSyncDisabled
	}

	snap, err := uc.remote.Pull(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Pull Pull: %v", err)
		uc.metrics.Sync(opPull, "error")
		return sync.PullOutput{}, mapRemoteError(err)
	}

	var data bookmark.ExportData
	if err := json.Unmarshal(snap.Data, &data); err != nil {
		uc.l.Errorf(ctx, "uc.Pull Unmarshal: %v", err)
		uc.metrics.Sync(opPull, "error")
		return sync.PullOutput{}, fmt.Errorf("%w: malformed snapshot", sync.ErrRemote)
	}
	if data.Version == 0 {
		data.Version = bookmark.ExportVersion
	}

	res, err := uc.library.Import(ctx, data)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Pull Import: %v", err)
		uc.metrics.Sync(opPull, "error")
		return sync.PullOutput{}, err
	}

	uc.metrics.Sync(opPull, "ok")
	return sync.PullOutput{
		UserID:    snap.UserID,
		UpdatedAt: snap.UpdatedAt,
		Result:    res,
	}, nil
}

func mapRemoteError(err error) error {
	switch {
	case errors.Is(err, remote.ErrNotConfigured):
		return sync.ErrSyncDisabled
	case errors.Is(err, remote.ErrUnauthorized):
		return fmt.Errorf("%w: %v", sync.ErrRemoteUnauthorized, err)
	case errors.Is(err, remote.ErrNoSnapshot):
		return sync.ErrNoSnapshot
	default:
		return fmt.Errorf("%w: %v", sync.ErrRemote, err)
	}
}
