package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookmark-manager/internal/bookmark"
	repo "bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/internal/model"
)

// Export returns the whole library as a versioned JSON document.
func (uc *implUseCase) Export(ctx context.Context) (bookmark.ExportData, error) {
	cats, err := uc.ListCategories(ctx)
	if err != nil {
		return bookmark.ExportData{}, err
	}
	bookmarks, err := uc.allBookmarks(ctx)
	if err != nil {
		return bookmark.ExportData{}, err
	}
	return bookmark.ExportData{
		Version:    bookmark.ExportVersion,
		ExportedAt: time.Now().UTC(),
		Categories: cats,
		Bookmarks:  bookmarks,
	}, nil
}

// Import merges data into the library. Categories and sub-categories match by
// id, then by name. Bookmarks already present in their sub-category are skipped.
func (uc *implUseCase) Import(ctx context.Context, data bookmark.ExportData) (bookmark.ImportResult, error) {
	if data.Version > bookmark.ExportVersion {
		return bookmark.ImportResult{}, bookmark.ErrInvalidPayload
	}

	im := uc.newImporter()
	for ci, c := range data.Categories {
		catID, err := im.category(ctx, c.ID, c.Name, ci, c.Position, c.CreatedAt)
		if err != nil {
			return im.res, err
		}
		if catID == "" {
			continue
		}
		for si, s := range c.SubCategories {
			if _, err := im.subCategory(ctx, catID, s.ID, s.Name, si, s.Position, s.CreatedAt); err != nil {
				return im.res, err
			}
		}
	}

	for _, b := range data.Bookmarks {
		subID, err := im.resolveSub(ctx, b.SubCategoryID)
		if err != nil {
			return im.res, err
		}
		if err := im.bookmark(ctx, subID, b); err != nil {
			return im.res, err
		}
	}

	uc.l.Infof(ctx, "uc.Import: %+v", im.res)
	return im.res, nil
}

func (uc *implUseCase) allBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	bookmarks, _, err := uc.repo.ListBookmarks(ctx, repo.ListBookmarksOptions{OrderBy: "created_at ASC"})
	if err != nil {
		uc.l.Errorf(ctx, "uc.allBookmarks ListBookmarks: %v", err)
		return nil, err
	}
	return bookmarks, nil
}

// importer merges foreign records and remembers how their ids were mapped.
type importer struct {
	uc  *implUseCase
	res bookmark.ImportResult
	// subIDs maps sub-category ids from the payload to stored ids.
	subIDs      map[string]string
	fallbackSub string
}

func (uc *implUseCase) newImporter() *importer {
	return &importer{uc: uc, subIDs: map[string]string{}}
}

// category returns the stored id for a payload category, creating it when no
// match exists. An empty id means the record was unusable.
func (im *importer) category(ctx context.Context, id, name string, index, position int, createdAt time.Time) (string, error) {
	r := im.uc.repo
	if id != "" {
		c, err := r.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id})
		if err != nil {
			return "", err
		}
		if c.ID != "" {
			return c.ID, nil
		}
	}

	name, err := normalizeName(name)
	if err != nil {
		im.uc.l.Warnf(ctx, "uc.Import category %q: %v", id, err)
		return "", nil
	}
	c, err := r.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: name})
	if err != nil {
		return "", err
	}
	if c.ID != "" {
		return c.ID, nil
	}

	if id == "" {
		id = uuid.NewString()
	}
	if position == 0 {
		position = index
	}
	c, err = r.CreateCategory(ctx, repo.CreateCategoryOptions{ID: id, Name: name, Position: position, CreatedAt: createdAt})
	if err != nil {
		im.uc.l.Errorf(ctx, "uc.Import CreateCategory: %v", err)
		return "", err
	}
	im.res.CategoriesCreated++
	return c.ID, nil
}

func (im *importer) subCategory(ctx context.Context, parentID, id, name string, index, position int, createdAt time.Time) (string, error) {
	r := im.uc.repo
	if id != "" {
		s, err := r.GetOneSubCategory(ctx, repo.GetOneSubCategoryOptions{ID: id})
		if err != nil {
			return "", err
		}
		if s.ID != "" {
			im.subIDs[id] = s.ID
			return s.ID, nil
		}
	}

	clean, err := normalizeName(name)
	if err != nil {
		im.uc.l.Warnf(ctx, "uc.Import sub-category %q: %v", id, err)
		return "", nil
	}
	s, err := r.GetOneSubCategory(ctx, repo.GetOneSubCategoryOptions{ParentID: parentID, Name: clean})
	if err != nil {
		return "", err
	}
	if s.ID == "" {
		newID := id
		if newID == "" {
			newID = uuid.NewString()
		}
		if position == 0 {
			position = index
		}
		s, err = r.CreateSubCategory(ctx, repo.CreateSubCategoryOptions{
			ID:        newID,
			ParentID:  parentID,
			Name:      clean,
			Position:  position,
			CreatedAt: createdAt,
		})
		if err != nil {
			im.uc.l.Errorf(ctx, "uc.Import CreateSubCategory: %v", err)
			return "", err
		}
		im.res.SubCategoriesCreated++
	}
	if id != "" {
		im.subIDs[id] = s.ID
	}
	return s.ID, nil
}

// resolveSub maps a payload sub-category id to a stored one. Unknown ids land
// in the Imported/Unsorted catch-all.
func (im *importer) resolveSub(ctx context.Context, id string) (string, error) {
	if stored, ok := im.subIDs[id]; ok {
		return stored, nil
	}
	if id != "" {
		s, err := im.uc.repo.GetOneSubCategory(ctx, repo.GetOneSubCategoryOptions{ID: id})
		if err != nil {
			return "", err
		}
		if s.ID != "" {
			im.subIDs[id] = s.ID
			return s.ID, nil
		}
	}
	return im.unsorted(ctx)
}

func (im *importer) unsorted(ctx context.Context) (string, error) {
	if im.fallbackSub != "" {
		return im.fallbackSub, nil
	}
	catID, err := im.category(ctx, "", bookmark.ImportedCategoryName, 0, 0, time.Time{})
	if err != nil {
		return "", err
	}
	subID, err := im.subCategory(ctx, catID, "", bookmark.UnsortedSubName, 0, 0, time.Time{})
	if err != nil {
		return "", err
	}
	im.fallbackSub = subID
	return subID, nil
}

// bookmark stores b in subID unless its URL is invalid or already present.
func (im *importer) bookmark(ctx context.Context, subID string, b model.Bookmark) error {
	r := im.uc.repo
	link, key, u, err := parseLink(b.URL)
	if err != nil {
		im.res.BookmarksSkipped++
		return nil
	}

	existing, err := r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{SubCategoryID: subID, URLKey: key})
	if err != nil {
		return err
	}
	if existing.ID != "" {
		im.res.BookmarksSkipped++
		return nil
	}

	id := b.ID
	if id != "" {
		taken, err := r.GetOneBookmark(ctx, repo.GetOneBookmarkOptions{ID: id})
		if err != nil {
			return err
		}
		if taken.ID != "" {
			id = ""
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	_, err = r.CreateBookmark(ctx, repo.CreateBookmarkOptions{
		ID:            id,
		SubCategoryID: subID,
		Title:         truncateTitle(b.Title, u),
		URL:           link,
		URLKey:        key,
		Description:   strings.TrimSpace(b.Description),
		CoverImage:    strings.TrimSpace(b.CoverImage),
		Tags:          normalizeTags(b.Tags),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		im.res.BookmarksSkipped++
		return nil
	}
	if err != nil {
		im.uc.l.Errorf(ctx, "uc.Import CreateBookmark: %v", err)
		return err
	}
	im.res.BookmarksCreated++
	return nil
}
