package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"bookmark-manager/internal/bookmark"
	repo "bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/internal/model"
)

func (uc *implUseCase) ListBookmarks(ctx context.Context, input bookmark.ListBookmarksInput) (bookmark.ListBookmarksOutput, error) {
	limit, offset := clampPage(input.Limit, input.Offset)

	bookmarks, total, err := uc.repo.ListBookmarks(ctx, repo.ListBookmarksOptions{
		SubCategoryID: input.SubCategoryID,
		Tag:           input.Tag,
		Query:         input.Query,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListBookmarks ListBookmarks: %v", err)
		return bookmark.ListBookmarksOutput{}, err
	}

	return bookmark.ListBookmarksOutput{
		Bookmarks: bookmarks,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

func (uc *implUseCase) CreateBookmark(ctx context.Context, input bookmark.CreateBookmarkInput) (model.Bookmark, error) {
	if _, err := uc.getSubCategory(ctx, input.SubCategoryID); err != nil {
		return model.Bookmark{}, err
	}
	link, key, u, err := parseLink(input.URL)
	if err != nil {
		return model.Bookmark{}, err
	}
	title, err := normalizeTitle(input.Title, u)
	if err != nil {
		return model.Bookmark{}, err
	}
	if err := uc.ensureUniqueURL(ctx, input.SubCategoryID, key, ""); err != nil {
		return model.Bookmark{}, err
	}

	b, err := uc.repo.CreateBookmark(ctx, repo.CreateBookmarkOptions{
		ID:            uuid.NewString(),
		SubCategoryID: input.SubCategoryID,
		Title:         title,
		URL:           link,
		URLKey:        key,
		Description:   strings.TrimSpace(input.Description),
		CoverImage:    strings.TrimSpace(input.CoverImage),
		Tags:          normalizeTags(input.Tags),
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Bookmark{}, bookmark.ErrDuplicateURL
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBookmark CreateBookmark: %v", err)
		return model.Bookmark{}, err
	}
	return b, nil
}

func (uc *implUseCase) DetailBookmark(ctx context.Context, id string) (model.Bookmark, error) {
	return uc.getBookmark(ctx, id)
}

// UpdateBookmark applies a partial update. Moving a bookmark or changing its
// URL re-checks uniqueness within the target sub-category.
func (uc *implUseCase) UpdateBookmark(ctx context.Context, input bookmark.UpdateBookmarkInput) (model.Bookmark, error) {
	current, err := uc.getBookmark(ctx, input.ID)
	if err != nil {
		return model.Bookmark{}, err
	}

	opt := repo.UpdateBookmarkOptions{
		ID:            current.ID,
		SubCategoryID: current.SubCategoryID,
		Title:         current.Title,
		URL:           current.URL,
		Description:   current.Description,
		CoverImage:    current.CoverImage,
		Tags:          current.Tags,
	}

	if input.SubCategoryID != nil && *input.SubCategoryID != current.SubCategoryID {
		if _, err := uc.getSubCategory(ctx, *input.SubCategoryID); err != nil {
			return model.Bookmark{}, err
		}
		opt.SubCategoryID = *input.SubCategoryID
	}

	_, currentKey, u, err := parseLink(current.URL)
	if err != nil {
		return model.Bookmark{}, err
	}
	opt.URLKey = currentKey
	if input.URL != nil {
		if opt.URL, opt.URLKey, u, err = parseLink(*input.URL); err != nil {
			return model.Bookmark{}, err
		}
	}

	if input.Title != nil {
		if opt.Title, err = normalizeTitle(*input.Title, u); err != nil {
			return model.Bookmark{}, err
		}
	}
	if input.Description != nil {
		opt.Description = strings.TrimSpace(*input.Description)
	}
	if input.CoverImage != nil {
		opt.CoverImage = strings.TrimSpace(*input.CoverImage)
	}
	if input.Tags != nil {
		opt.Tags = normalizeTags(*input.Tags)
	}

	if opt.URLKey != currentKey || opt.SubCategoryID != current.SubCategoryID {
		if err := uc.ensureUniqueURL(ctx, opt.SubCategoryID, opt.URLKey, current.ID); err != nil {
			return model.Bookmark{}, err
		}
	}

	b, err := uc.repo.UpdateBookmark(ctx, opt)
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Bookmark{}, bookmark.ErrDuplicateURL
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateBookmark UpdateBookmark: %v", err)
		return model.Bookmark{}, err
	}
	if b.ID == "" {
		return model.Bookmark{}, bookmark.ErrBookmarkNotFound
	}
	return b, nil
}

func (uc *implUseCase) DeleteBookmark(ctx context.Context, id string) error {
	if _, err := uc.getBookmark(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteBookmark(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteBookmark DeleteBookmark: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getBookmark(ctx context.Context, id string) (model.Bookmark, error) {
	if id == "" {
		return model.Bookmark{}, bookmark.ErrBookmarkNotFound
	}
	b, err := uc.repo.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getBookmark GetOneBookmark: %v", err)
		return model.Bookmark{}, err
	}
	if b.ID == "" {
		return model.Bookmark{}, bookmark.ErrBookmarkNotFound
	}
	return b, nil
}

// ensureUniqueURL fails with ErrDuplicateURL when another bookmark in
// subCategoryID already has the URL key. selfID is ignored.
func (uc *implUseCase) ensureUniqueURL(ctx context.Context, subCategoryID, key, selfID string) error {
	existing, err := uc.repo.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{SubCategoryID: subCategoryID, URLKey: key})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureUniqueURL GetOneBookmark: %v", err)
		return err
	}
	if existing.ID != "" && existing.ID != selfID {
		return bookmark.ErrDuplicateURL
	}
	return nil
}
