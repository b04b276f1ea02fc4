package http

import (
	"github.com/gin-gonic/gin"

	"bookmark-manager/pkg/response"
)

// Push godoc
// @Summary     Push the library to the hosted backend
// @Description Upserts the whole library as the configured user's snapshot.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} response.Resp{data=pushResp}
// @Failure     502 {object} response.Resp "Hosted backend error"
// @Failure     503 {object} response.Resp "Sync disabled"
// @Router      /api/v1/sync/push [POST]
func (h *handler) Push(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Push(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Push: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPushResp(out))
}

// Pull godoc
// @Summary     Pull the latest snapshot from the hosted backend
// @Description Merges the snapshot into the local library. Duplicate urls are skipped.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} response.Resp{data=pullResp}
// @Failure     404 {object} response.Resp "No snapshot stored"
// @Failure     502 {object} response.Resp "Hosted backend error"
// @Failure     503 {object} response.Resp "Sync disabled"
// @Router      /api/v1/sync/pull [POST]
func (h *handler) Pull(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Pull(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Pull: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPullResp(out))
}
