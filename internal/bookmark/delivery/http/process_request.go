package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxImportBytes = 20 << 20

func (h *handler) processCreateCategoryReq(c *gin.Context) (createCategoryReq, error) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateCategoryReq(c *gin.Context) (updateCategoryReq, error) {
	var req updateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

func (h *handler) processCreateSubCategoryReq(c *gin.Context) (createSubCategoryReq, error) {
	var req createSubCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CategoryID = c.Param("id")
	if req.CategoryID == "" {
		return req, errMissingID
	}
	return req, nil
}

func (h *handler) processUpdateSubCategoryReq(c *gin.Context) (updateSubCategoryReq, error) {
	var req updateSubCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

func (h *handler) processListBookmarksReq(c *gin.Context) (listBookmarksReq, error) {
	var req listBookmarksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateBookmarkReq(c *gin.Context) (createBookmarkReq, error) {
	var req createBookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateBookmarkReq(c *gin.Context) (updateBookmarkReq, error) {
	var req updateBookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if isTooLarge(err) {
			return req, errBodyTooBig
		}
		return req, errInvalidBody
	}
	return req, nil
}

// processImportHTMLReq accepts the file either as the raw body or as the
// "file" field of a multipart form.
func (h *handler) processImportHTMLReq(c *gin.Context) (io.ReadCloser, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("file")
		if err != nil {
			if isTooLarge(err) {
				return nil, errBodyTooBig
			}
			return nil, errInvalidBody
		}
		return fh.Open()
	}
	return c.Request.Body, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
