package http

import (
	"time"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/internal/model"
	"bookmark-manager/pkg/response"
)

// --- Request DTOs ---

type createCategoryReq struct {
	Name     string `json:"name" binding:"required"`
	Position *int   `json:"position"`
}

func (r createCategoryReq) toInput() bookmark.CreateCategoryInput {
	return bookmark.CreateCategoryInput{Name: r.Name, Position: r.Position}
}

type updateCategoryReq struct {
	ID       string  `json:"-"` // populated from URI param
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}

func (r updateCategoryReq) toInput() bookmark.UpdateCategoryInput {
	return bookmark.UpdateCategoryInput{ID: r.ID, Name: r.Name, Position: r.Position}
}

type createSubCategoryReq struct {
	CategoryID string `json:"-"` // populated from URI param
	Name       string `json:"name" binding:"required"`
	Position   *int   `json:"position"`
}

func (r createSubCategoryReq) toInput() bookmark.CreateSubCategoryInput {
	return bookmark.CreateSubCategoryInput{CategoryID: r.CategoryID, Name: r.Name, Position: r.Position}
}

type updateSubCategoryReq struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	ParentID *string `json:"parentId"`
	Position *int    `json:"position"`
}

func (r updateSubCategoryReq) toInput() bookmark.UpdateSubCategoryInput {
	return bookmark.UpdateSubCategoryInput{ID: r.ID, Name: r.Name, ParentID: r.ParentID, Position: r.Position}
}

type listBookmarksReq struct {
	SubCategoryID string `form:"sub_category_id"`
	Tag           string `form:"tag"`
	Query         string `form:"q"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

func (r listBookmarksReq) toInput() bookmark.ListBookmarksInput {
	return bookmark.ListBookmarksInput{
		SubCategoryID: r.SubCategoryID,
		Tag:           r.Tag,
		Query:         r.Query,
		Limit:         r.Limit,
		Offset:        r.Offset,
	}
}

type createBookmarkReq struct {
	Title         string   `json:"title"`
	URL           string   `json:"url" binding:"required"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"coverImage"`
	Tags          []string `json:"tags"`
	SubCategoryID string   `json:"subCategoryId" binding:"required"`
}

func (r createBookmarkReq) toInput() bookmark.CreateBookmarkInput {
	return bookmark.CreateBookmarkInput{
		Title:         r.Title,
		URL:           r.URL,
		Description:   r.Description,
		CoverImage:    r.CoverImage,
		Tags:          r.Tags,
		SubCategoryID: r.SubCategoryID,
	}
}

// updateBookmarkReq is a partial update: absent fields stay unchanged.
type updateBookmarkReq struct {
	ID            string    `json:"-"`
	Title         *string   `json:"title"`
	URL           *string   `json:"url"`
	Description   *string   `json:"description"`
	CoverImage    *string   `json:"coverImage"`
	Tags          *[]string `json:"tags"`
	SubCategoryID *string   `json:"subCategoryId"`
}

func (r updateBookmarkReq) toInput() bookmark.UpdateBookmarkInput {
	return bookmark.UpdateBookmarkInput{
		ID:            r.ID,
		Title:         r.Title,
		URL:           r.URL,
		Description:   r.Description,
		CoverImage:    r.CoverImage,
		Tags:          r.Tags,
		SubCategoryID: r.SubCategoryID,
	}
}

// importReq is the JSON export document.
type importReq struct {
	Version    int              `json:"version"`
	Categories []model.Category `json:"categories"`
	Bookmarks  []model.Bookmark `json:"bookmarks"`
}

func (r importReq) toInput() bookmark.ExportData {
	return bookmark.ExportData{Version: r.Version, Categories: r.Categories, Bookmarks: r.Bookmarks}
}

// --- Response DTOs ---

type subCategoryResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parentId"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

type categoryResp struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Position      int               `json:"position"`
	SubCategories []subCategoryResp `json:"subCategories"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type bookmarkResp struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Description   string    `json:"description"`
	CoverImage    string    `json:"coverImage"`
	Tags          []string  `json:"tags"`
	SubCategoryID string    `json:"subCategoryId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type listBookmarksResp struct {
	Bookmarks []bookmarkResp `json:"bookmarks"`
	response.Paging
}

type enhanceResp struct {
	Bookmark bookmarkResp `json:"bookmark"`
	Updated  bool         `json:"updated"`
	Sources  []string     `json:"sources"`
}

func (h *handler) newSubCategoryResp(s model.SubCategory) subCategoryResp {
	return subCategoryResp{
		ID:        s.ID,
		Name:      s.Name,
		ParentID:  s.ParentID,
		Position:  s.Position,
		CreatedAt: s.CreatedAt,
	}
}

func (h *handler) newCategoryResp(c model.Category) categoryResp {
	subs := make([]subCategoryResp, 0, len(c.SubCategories))
	for _, s := range c.SubCategories {
		subs = append(subs, h.newSubCategoryResp(s))
	}
	return categoryResp{
		ID:            c.ID,
		Name:          c.Name,
		Position:      c.Position,
		SubCategories: subs,
		CreatedAt:     c.CreatedAt,
	}
}

func (h *handler) newCategoriesResp(cats []model.Category) []categoryResp {
	out := make([]categoryResp, 0, len(cats))
	for _, c := range cats {
		out = append(out, h.newCategoryResp(c))
	}
	return out
}

func (h *handler) newBookmarkResp(b model.Bookmark) bookmarkResp {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return bookmarkResp{
		ID:            b.ID,
		Title:         b.Title,
		URL:           b.URL,
		Description:   b.Description,
		CoverImage:    b.CoverImage,
		Tags:          tags,
		SubCategoryID: b.SubCategoryID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (h *handler) newListBookmarksResp(out bookmark.ListBookmarksOutput) listBookmarksResp {
	items := make([]bookmarkResp, 0, len(out.Bookmarks))
	for _, b := range out.Bookmarks {
		items = append(items, h.newBookmarkResp(b))
	}
	return listBookmarksResp{
		Bookmarks: items,
		Paging:    response.NewPaging(out.Total, out.Limit, out.Offset),
	}
}

func (h *handler) newEnhanceResp(out bookmark.EnhanceOutput) enhanceResp {
	return enhanceResp{
		Bookmark: h.newBookmarkResp(out.Bookmark),
		Updated:  out.Updated,
		Sources:  out.Sources,
	}
}
