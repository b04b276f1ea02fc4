package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookmark-manager/pkg/response"
)

// fail answers with the mapped error. Domain errors are logged at warn level.
func (h *handler) fail(ctx context.Context, c *gin.Context, op string, err error) {
	mapped := h.mapError(err)
	if isClientError(mapped) {
		h.l.Warnf(ctx, "%s: %v", op, err)
	} else {
		h.l.Errorf(ctx, "%s: %v", op, err)
	}
	response.Error(c, mapped, nil)
}

// ListCategories godoc
// @Summary     List categories
// @Description Returns every category with its sub-categories, ordered by position.
// @Tags        Categories
// @Produce     json
// @Success     200 {object} response.Resp{data=[]categoryResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	cats, err := h.uc.ListCategories(ctx)
	if err != nil {
		h.fail(ctx, c, "uc.ListCategories", err)
		return
	}

	response.OK(c, h.newCategoriesResp(cats))
}

// CreateCategory godoc
// @Summary     Create a category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       body body createCategoryReq true "Category"
// @Success     200 {object} response.Resp{data=categoryResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/categories [POST]
func (h *handler) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateCategoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CreateCategory(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.CreateCategory", err)
		return
	}

	response.OK(c, h.newCategoryResp(out))
}

// UpdateCategory godoc
// @Summary     Rename or reorder a category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Category ID"
// @Param       body body updateCategoryReq true "Fields to update"
// @Success     200 {object} response.Resp{data=categoryResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [PUT]
func (h *handler) UpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateCategoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateCategory(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.UpdateCategory", err)
		return
	}

	response.OK(c, h.newCategoryResp(out))
}

// DeleteCategory godoc
// @Summary     Delete a category
// @Description Removes the category together with its sub-categories and bookmarks.
// @Tags        Categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [DELETE]
func (h *handler) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteCategory(ctx, c.Param("id")); err != nil {
		h.fail(ctx, c, "uc.DeleteCategory", err)
		return
	}

	response.OK(c, nil)
}

// CreateSubCategory godoc
// @Summary     Create a sub-category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       id   path string               true "Parent category ID"
// @Param       body body createSubCategoryReq true "Sub-category"
// @Success     200 {object} response.Resp{data=subCategoryResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id}/subcategories [POST]
func (h *handler) CreateSubCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSubCategoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CreateSubCategory(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.CreateSubCategory", err)
		return
	}

	response.OK(c, h.newSubCategoryResp(out))
}

// UpdateSubCategory godoc
// @Summary     Update a sub-category
// @Description Renames, reorders or moves a sub-category to another category.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       id   path string               true "Sub-category ID"
// @Param       body body updateSubCategoryReq true "Fields to update"
// @Success     200 {object} response.Resp{data=subCategoryResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/subcategories/{id} [PUT]
func (h *handler) UpdateSubCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateSubCategoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateSubCategory(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.UpdateSubCategory", err)
		return
	}

	response.OK(c, h.newSubCategoryResp(out))
}

// DeleteSubCategory godoc
// @Summary     Delete a sub-category and its bookmarks
// @Tags        Categories
// @Produce     json
// @Param       id path string true "Sub-category ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/subcategories/{id} [DELETE]
func (h *handler) DeleteSubCategory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteSubCategory(ctx, c.Param("id")); err != nil {
		h.fail(ctx, c, "uc.DeleteSubCategory", err)
		return
	}

	response.OK(c, nil)
}

// ListBookmarks godoc
// @Summary     List bookmarks
// @Description Newest first. q searches title, description and url.
// @Tags        Bookmarks
// @Produce     json
// @Param       sub_category_id query string false "Sub-category filter"
// @Param       tag             query string false "Tag filter (case-insensitive)"
// @Param       q               query string false "Search text"
// @Param       limit           query int    false "Page size (default 100, max 1000)"
// @Param       offset          query int    false "Page offset"
// @Success     200 {object} response.Resp{data=listBookmarksResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/bookmarks [GET]
func (h *handler) ListBookmarks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListBookmarksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListBookmarks(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.ListBookmarks", err)
		return
	}

	response.OK(c, h.newListBookmarksResp(out))
}

// CreateBookmark godoc
// @Summary     Create a bookmark
// @Description The url must be unique within its sub-category after normalisation.
// @Tags        Bookmarks
// @Accept      json
// @Produce     json
// @Param       body body createBookmarkReq true "Bookmark"
// @Success     200 {object} response.Resp{data=bookmarkResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Sub-category not found"
// @Failure     409 {object} response.Resp "Duplicate url"
// @Router      /api/v1/bookmarks [POST]
func (h *handler) CreateBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateBookmarkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CreateBookmark(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.CreateBookmark", err)
		return
	}

	response.OK(c, h.newBookmarkResp(out))
}

// DetailBookmark godoc
// @Summary     Get a bookmark
// @Tags        Bookmarks
// @Produce     json
// @Param       id path string true "Bookmark ID"
// @Success     200 {object} response.Resp{data=bookmarkResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/bookmarks/{id} [GET]
func (h *handler) DetailBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.DetailBookmark(ctx, c.Param("id"))
	if err != nil {
		h.fail(ctx, c, "uc.DetailBookmark", err)
		return
	}

	response.OK(c, h.newBookmarkResp(out))
}

// UpdateBookmark godoc
// @Summary     Update a bookmark
// @Description Partial update. Setting subCategoryId moves the bookmark.
// @Tags        Bookmarks
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Bookmark ID"
// @Param       body body updateBookmarkReq true "Fields to update"
// @Success     200 {object} response.Resp{data=bookmarkResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Duplicate url"
// @Router      /api/v1/bookmarks/{id} [PUT]
func (h *handler) UpdateBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateBookmarkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateBookmark(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.UpdateBookmark", err)
		return
	}

	response.OK(c, h.newBookmarkResp(out))
}

// DeleteBookmark godoc
// @Summary     Delete a bookmark
// @Tags        Bookmarks
// @Produce     json
// @Param       id path string true "Bookmark ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/bookmarks/{id} [DELETE]
func (h *handler) DeleteBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteBookmark(ctx, c.Param("id")); err != nil {
		h.fail(ctx, c, "uc.DeleteBookmark", err)
		return
	}

	response.OK(c, nil)
}

// EnhanceBookmark godoc
// @Summary     Enhance a bookmark
// @Description Fills an empty description or cover image from the seed dataset, scraped metadata or the site favicon.
// @Tags        Bookmarks
// @Produce     json
// @Param       id path string true "Bookmark ID"
// @Success     200 {object} response.Resp{data=enhanceResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/bookmarks/{id}/enhance [POST]
func (h *handler) EnhanceBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.EnhanceBookmark(ctx, c.Param("id"))
	if err != nil {
		h.fail(ctx, c, "uc.EnhanceBookmark", err)
		return
	}

	response.OK(c, h.newEnhanceResp(out))
}

// EnhanceAll godoc
// @Summary     Enhance all bookmarks
// @Description Starts a background job over every bookmark missing details.
// @Tags        Bookmarks
// @Produce     json
// @Success     202 {object} response.Resp{data=bookmark.EnhanceJob}
// @Failure     409 {object} response.Resp "A job is already running"
// @Router      /api/v1/bookmarks/enhance [POST]
func (h *handler) EnhanceAll(c *gin.Context) {
	ctx := c.Request.Context()

	job, err := h.uc.EnhanceAll(ctx)
	if err != nil {
		h.fail(ctx, c, "uc.EnhanceAll", err)
		return
	}

	response.Accepted(c, job)
}

// Export godoc
// @Summary     Export the library as JSON
// @Description Answers with the raw export document so it can be posted back to /import.
// @Tags        Transfer
// @Produce     json
// @Success     200 {object} bookmark.ExportData
// @Router      /api/v1/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.Export(ctx)
	if err != nil {
		h.fail(ctx, c, "uc.Export", err)
		return
	}

	c.Header("Content-Disposition", attachment("json"))
	c.JSON(http.StatusOK, data)
}

// Import godoc
// @Summary     Import a JSON export
// @Description Merges categories by id then name. Duplicate urls are skipped.
// @Tags        Transfer
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Export document"
// @Success     200 {object} response.Resp{data=bookmark.ImportResult}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Body too large"
// @Router      /api/v1/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.Import", err)
		return
	}

	response.OK(c, res)
}

// ExportHTML godoc
// @Summary     Export the library as a browser bookmark file
// @Tags        Transfer
// @Produce     html
// @Success     200 {string} string "Netscape bookmark file"
// @Router      /api/v1/export/html [GET]
func (h *handler) ExportHTML(c *gin.Context) {
	ctx := c.Request.Context()

	var buf bytes.Buffer
	if err := h.uc.ExportHTML(ctx, &buf); err != nil {
		h.fail(ctx, c, "uc.ExportHTML", err)
		return
	}

	c.Header("Content-Disposition", attachment("html"))
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ImportHTML godoc
// @Summary     Import a browser bookmark file
// @Description Accepts the file as the raw body or as the "file" multipart field.
// @Tags        Transfer
// @Accept      html
// @Produce     json
// @Success     200 {object} response.Resp{data=bookmark.ImportResult}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/import/html [POST]
func (h *handler) ImportHTML(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := h.processImportHTMLReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer body.Close()

	res, err := h.uc.ImportHTML(ctx, body)
	if err != nil {
		h.fail(ctx, c, "uc.ImportHTML", err)
		return
	}

	response.OK(c, res)
}

func attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="bookmarks-%s.%s"`, time.Now().UTC().Format("20060102"), ext)
}
