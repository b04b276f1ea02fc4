package usecase

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"bookmark-manager/internal/bookmark"
	repo "bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/internal/metadata"
	"bookmark-manager/internal/model"
)

const (
	enhanceUpdated   = "updated"
	enhanceUnchanged = "unchanged"
	enhanceFailed    = "failed"
)

// EnhanceBookmark fills an empty description or cover image. Values the user
// has set are never replaced.
func (uc *implUseCase) EnhanceBookmark(ctx context.Context, id string) (bookmark.EnhanceOutput, error) {
	b, err := uc.getBookmark(ctx, id)
	if err != nil {
		return bookmark.EnhanceOutput{}, err
	}
	out, err := uc.enhance(ctx, b)
	if err != nil {
		uc.metrics.Enhanced(enhanceFailed)
		return bookmark.EnhanceOutput{}, err
	}
	if out.Updated {
		uc.metrics.Enhanced(enhanceUpdated)
	} else {
		uc.metrics.Enhanced(enhanceUnchanged)
	}
	return out, nil
}

// EnhanceAll queues every bookmark missing details and returns at once.
// Only one batch runs at a time.
func (uc *implUseCase) EnhanceAll(ctx context.Context) (bookmark.EnhanceJob, error) {
	if !uc.enhancing.CompareAndSwap(false, true) {
		return bookmark.EnhanceJob{}, bookmark.ErrEnhanceRunning
	}

	pending, err := uc.pendingBookmarks(ctx)
	if err != nil {
		uc.enhancing.Store(false)
		return bookmark.EnhanceJob{}, err
	}

	job := bookmark.EnhanceJob{
		ID:        uuid.NewString(),
		Queued:    len(pending),
		StartedAt: time.Now().UTC(),
	}
	uc.l.Infof(ctx, "uc.EnhanceAll: job %s queued %d bookmarks", job.ID, job.Queued)

	bg := context.WithoutCancel(ctx)
	go func() {
		defer uc.enhancing.Store(false)
		summary := uc.runBatch(bg, pending)
		summary.JobID = job.ID
		uc.l.Infof(bg, "uc.EnhanceAll: job %s done, updated %d of %d, failed %d",
			job.ID, summary.Updated, summary.Total, summary.Failed)
		if uc.onBatchDone != nil {
			uc.onBatchDone(summary)
		}
	}()
	return job, nil
}

// EnhancePending runs the batch in the caller's goroutine.
func (uc *implUseCase) EnhancePending(ctx context.Context) (bookmark.EnhanceSummary, error) {
	if !uc.enhancing.CompareAndSwap(false, true) {
		return bookmark.EnhanceSummary{}, bookmark.ErrEnhanceRunning
	}
	defer uc.enhancing.Store(false)

	pending, err := uc.pendingBookmarks(ctx)
	if err != nil {
		return bookmark.EnhanceSummary{}, err
	}
	summary := uc.runBatch(ctx, pending)
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (uc *implUseCase) pendingBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	pending, _, err := uc.repo.ListBookmarks(ctx, repo.ListBookmarksOptions{
		MissingDetails: true,
		OrderBy:        "created_at ASC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.pendingBookmarks ListBookmarks: %v", err)
		return nil, err
	}
	return pending, nil
}

// runBatch enhances bookmarks one by one, paced by the limiter. Each row is
// re-read first so edits made since the pending list was taken are kept.
func (uc *implUseCase) runBatch(ctx context.Context, pending []model.Bookmark) bookmark.EnhanceSummary {
	summary := bookmark.EnhanceSummary{Total: len(pending)}
	for _, b := range pending {
		if err := uc.limiter.Wait(ctx); err != nil {
			uc.l.Warnf(ctx, "uc.runBatch Wait: %v", err)
			break
		}
		current, err := uc.repo.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: b.ID})
		if err != nil {
			summary.Failed++
			uc.metrics.Enhanced(enhanceFailed)
			uc.l.Warnf(ctx, "uc.runBatch GetOneBookmark %s: %v", b.ID, err)
			continue
		}
		if current.ID == "" {
			uc.metrics.Enhanced(enhanceUnchanged)
			continue
		}
		out, err := uc.enhance(ctx, current)
		switch {
		case err != nil:
			summary.Failed++
			uc.metrics.Enhanced(enhanceFailed)
			uc.l.Warnf(ctx, "uc.runBatch enhance %s: %v", b.ID, err)
		case out.Updated:
			summary.Updated++
			uc.metrics.Enhanced(enhanceUpdated)
		default:
			uc.metrics.Enhanced(enhanceUnchanged)
		}
	}
	return summary
}

// enhance tries the seed dataset, then scraped metadata, then the favicon.
func (uc *implUseCase) enhance(ctx context.Context, b model.Bookmark) (bookmark.EnhanceOutput, error) {
	if !b.NeedsEnhancement() {
		return bookmark.EnhanceOutput{Bookmark: b, Sources: []string{bookmark.SourceNone}}, nil
	}

	u, err := url.Parse(b.URL)
	if err != nil || u.Host == "" {
		return bookmark.EnhanceOutput{Bookmark: b, Sources: []string{bookmark.SourceNone}}, nil
	}
	host := u.Hostname()

	next := b
	var sources []string

	if entry, ok := uc.seed.Lookup(host); ok {
		d := fill(&next.Description, entry.Description)
		i := fill(&next.CoverImage, entry.Image)
		if d || i {
			sources = append(sources, bookmark.SourceSeed)
		}
	}

	if next.NeedsEnhancement() && uc.meta != nil {
		meta, err := uc.meta.FetchMeta(ctx, metadata.FetchInput{URL: b.URL})
		if err != nil {
			uc.l.Warnf(ctx, "uc.enhance FetchMeta: %v", err)
		} else if !meta.Fallback {
			d := fill(&next.Description, meta.Description)
			i := fill(&next.CoverImage, meta.Image)
			if d || i {
				sources = append(sources, bookmark.SourceScrape)
			}
		}
	}

	if fill(&next.CoverImage, uc.faviconCover(host)) {
		sources = append(sources, bookmark.SourceFavicon)
	}

	if len(sources) == 0 {
		return bookmark.EnhanceOutput{Bookmark: b, Sources: []string{bookmark.SourceNone}}, nil
	}

	opt := repo.FillBookmarkDetailsOptions{ID: b.ID}
	if b.Description == "" {
		opt.Description = next.Description
	}
	if b.CoverImage == "" {
		opt.CoverImage = next.CoverImage
	}
	updated, err := uc.repo.FillBookmarkDetails(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.enhance FillBookmarkDetails: %v", err)
		return bookmark.EnhanceOutput{}, err
	}
	if updated.ID == "" {
		return bookmark.EnhanceOutput{}, bookmark.ErrBookmarkNotFound
	}
	return bookmark.EnhanceOutput{Bookmark: updated, Updated: true, Sources: sources}, nil
}

// faviconCover returns the proxied favicon URL for host.
func (uc *implUseCase) faviconCover(host string) string {
	if host == "" {
		return ""
	}
	q := url.Values{}
	q.Set("domain", host)
	q.Set("sz", "64")
	favicon := uc.cfg.FaviconEndpoint + "?" + q.Encode()
	return uc.cfg.ProxyPath + "?url=" + url.QueryEscape(favicon)
}

// fill sets *dst to v when dst is empty and v is not.
func fill(dst *string, v string) bool {
	if *dst != "" || v == "" {
		return false
	}
	*dst = v
	return true
}
