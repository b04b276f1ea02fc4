package http

import "github.com/gin-gonic/gin"

// processFetchReq binds the url query parameter. Validation happens in the use case.
func (h *handler) processFetchReq(c *gin.Context) (fetchReq, error) {
	var req fetchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
