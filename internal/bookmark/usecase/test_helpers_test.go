package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/internal/metadata"
	"bookmark-manager/internal/model"
	"bookmark-manager/pkg/seed"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu         sync.Mutex
	categories map[string]model.Category
	subs       map[string]model.SubCategory
	bookmarks  map[string]model.Bookmark
	urlKeys    map[string]string
	seq        int
}

func newMemRepo() *memRepo {
	return &memRepo{
		categories: map[string]model.Category{},
		subs:       map[string]model.SubCategory{},
		bookmarks:  map[string]model.Bookmark{},
		urlKeys:    map[string]string{},
	}
}

// stamp returns strictly increasing timestamps so ordering is stable.
func (m *memRepo) stamp(t time.Time) time.Time {
	m.seq++
	if !t.IsZero() {
		return t
	}
	return time.Date(2024, 1, 1, 0, 0, m.seq, 0, time.UTC)
}

func (m *memRepo) CreateCategory(ctx context.Context, opt repository.CreateCategoryOptions) (model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := model.Category{ID: opt.ID, Name: opt.Name, Position: opt.Position, CreatedAt: m.stamp(opt.CreatedAt)}
	m.categories[c.ID] = c
	return c, nil
}

func (m *memRepo) GetOneCategory(ctx context.Context, opt repository.GetOneCategoryOptions) (model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.sortedCategories() {
		if opt.ID != "" && c.ID != opt.ID {
			continue
		}
		if opt.Name != "" && !strings.EqualFold(c.Name, opt.Name) {
			continue
		}
		return c, nil
	}
	return model.Category{}, nil
}

func (m *memRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedCategories(), nil
}

func (m *memRepo) sortedCategories() []model.Category {
	out := make([]model.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (m *memRepo) UpdateCategory(ctx context.Context, opt repository.UpdateCategoryOptions) (model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[opt.ID]
	if !ok {
		return model.Category{}, nil
	}
	c.Name, c.Position = opt.Name, opt.Position
	m.categories[c.ID] = c
	return c, nil
}

func (m *memRepo) DeleteCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	for sid, s := range m.subs {
		if s.ParentID == id {
			m.deleteSub(sid)
		}
	}
	return nil
}

func (m *memRepo) CreateSubCategory(ctx context.Context, opt repository.CreateSubCategoryOptions) (model.SubCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[opt.ParentID]; !ok {
		return model.SubCategory{}, repository.ErrFailedToInsert
	}
	s := model.SubCategory{ID: opt.ID, ParentID: opt.ParentID, Name: opt.Name, Position: opt.Position, CreatedAt: m.stamp(opt.CreatedAt)}
	m.subs[s.ID] = s
	return s, nil
}

func (m *memRepo) GetOneSubCategory(ctx context.Context, opt repository.GetOneSubCategoryOptions) (model.SubCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sortedSubs("") {
		if opt.ID != "" && s.ID != opt.ID {
			continue
		}
		if opt.ParentID != "" && s.ParentID != opt.ParentID {
			continue
		}
		if opt.Name != "" && !strings.EqualFold(s.Name, opt.Name) {
			continue
		}
		return s, nil
	}
	return model.SubCategory{}, nil
}

func (m *memRepo) ListSubCategories(ctx context.Context, opt repository.ListSubCategoriesOptions) ([]model.SubCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedSubs(opt.ParentID), nil
}

func (m *memRepo) sortedSubs(parentID string) []model.SubCategory {
	out := make([]model.SubCategory, 0)
	for _, s := range m.subs {
		if parentID == "" || s.ParentID == parentID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ParentID != out[j].ParentID {
			return out[i].ParentID < out[j].ParentID
		}
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (m *memRepo) UpdateSubCategory(ctx context.Context, opt repository.UpdateSubCategoryOptions) (model.SubCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subs[opt.ID]
	if !ok {
		return model.SubCategory{}, nil
	}
	s.ParentID, s.Name, s.Position = opt.ParentID, opt.Name, opt.Position
	m.subs[s.ID] = s
	return s, nil
}

func (m *memRepo) DeleteSubCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteSub(id)
	return nil
}

func (m *memRepo) deleteSub(id string) {
	delete(m.subs, id)
	for bid, b := range m.bookmarks {
		if b.SubCategoryID == id {
			delete(m.bookmarks, bid)
		}
	}
}

func (m *memRepo) duplicate(id, subID, key string) bool {
	for _, b := range m.bookmarks {
		if b.ID != id && b.SubCategoryID == subID && m.urlKeys[b.ID] == key {
			return true
		}
	}
	return false
}

func (m *memRepo) CreateBookmark(ctx context.Context, opt repository.CreateBookmarkOptions) (model.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.duplicate(opt.ID, opt.SubCategoryID, opt.URLKey) {
		return model.Bookmark{}, repository.ErrDuplicate
	}
	created := m.stamp(opt.CreatedAt)
	b := model.Bookmark{
		ID:            opt.ID,
		SubCategoryID: opt.SubCategoryID,
		Title:         opt.Title,
		URL:           opt.URL,
		Description:   opt.Description,
		CoverImage:    opt.CoverImage,
		Tags:          opt.Tags,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	m.bookmarks[b.ID] = b
	m.urlKeys[b.ID] = opt.URLKey
	return b, nil
}

func (m *memRepo) GetOneBookmark(ctx context.Context, opt repository.GetOneBookmarkOptions) (model.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookmarks {
		if opt.ID != "" && b.ID != opt.ID {
			continue
		}
		if opt.SubCategoryID != "" && b.SubCategoryID != opt.SubCategoryID {
			continue
		}
		if opt.URLKey != "" && m.urlKeys[b.ID] != opt.URLKey {
			continue
		}
		return b, nil
	}
	return model.Bookmark{}, nil
}

func (m *memRepo) ListBookmarks(ctx context.Context, opt repository.ListBookmarksOptions) ([]model.Bookmark, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Bookmark, 0)
	for _, b := range m.bookmarks {
		if opt.SubCategoryID != "" && b.SubCategoryID != opt.SubCategoryID {
			continue
		}
		if opt.MissingDetails && !b.NeedsEnhancement() {
			continue
		}
		if opt.Query != "" && !strings.Contains(strings.ToLower(b.Title+" "+b.Description+" "+b.URL), strings.ToLower(opt.Query)) {
			continue
		}
		if opt.Tag != "" && !hasTag(b.Tags, opt.Tag) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if opt.OrderBy == "created_at ASC" {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	total := len(out)
	if opt.Offset > 0 {
		if opt.Offset >= len(out) {
			out = out[:0]
		} else {
			out = out[opt.Offset:]
		}
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, total, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (m *memRepo) UpdateBookmark(ctx context.Context, opt repository.UpdateBookmarkOptions) (model.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookmarks[opt.ID]
	if !ok {
		return model.Bookmark{}, nil
	}
	if m.duplicate(opt.ID, opt.SubCategoryID, opt.URLKey) {
		return model.Bookmark{}, repository.ErrDuplicate
	}
	m.urlKeys[b.ID] = opt.URLKey
	b.SubCategoryID = opt.SubCategoryID
	b.Title = opt.Title
	b.URL = opt.URL
	b.Description = opt.Description
	b.CoverImage = opt.CoverImage
	b.Tags = opt.Tags
	b.UpdatedAt = b.UpdatedAt.Add(time.Second)
	m.bookmarks[b.ID] = b
	return b, nil
}

func (m *memRepo) FillBookmarkDetails(ctx context.Context, opt repository.FillBookmarkDetailsOptions) (model.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookmarks[opt.ID]
	if !ok {
		return model.Bookmark{}, nil
	}
	changed := false
	if b.Description == "" && opt.Description != "" {
		b.Description = opt.Description
		changed = true
	}
	if b.CoverImage == "" && opt.CoverImage != "" {
		b.CoverImage = opt.CoverImage
		changed = true
	}
	if changed {
		b.UpdatedAt = b.UpdatedAt.Add(time.Second)
		m.bookmarks[b.ID] = b
	}
	return b, nil
}

func (m *memRepo) DeleteBookmark(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bookmarks, id)
	delete(m.urlKeys, id)
	return nil
}

// mockMeta returns canned metadata per URL.
type mockMeta struct {
	mu    sync.Mutex
	metas map[string]metadata.MetaOutput
	calls []string
}

func (m *mockMeta) FetchTitle(ctx context.Context, input metadata.FetchInput) (metadata.TitleOutput, error) {
	out, _ := m.FetchMeta(ctx, input)
	return metadata.TitleOutput{Title: out.Title, URL: out.URL, Fallback: out.Fallback}, nil
}

func (m *mockMeta) FetchMeta(ctx context.Context, input metadata.FetchInput) (metadata.MetaOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, input.URL)
	if out, ok := m.metas[input.URL]; ok {
		return out, nil
	}
	return metadata.MetaOutput{URL: input.URL, Fallback: true}, nil
}

func newTestUseCase(dataset *seed.Dataset, meta metadata.UseCase) (*implUseCase, *memRepo) {
	r := newMemRepo()
	uc := New(&mockLogger{}, r, meta, dataset, nil, Config{RatePerSec: 1000})
	return uc, r
}
