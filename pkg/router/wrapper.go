package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindUri(&req); err != nil {
			xcontext.Logger(router.ctx).Debugf("Cannot bind uri: %v", err)
			writeError(c, errorx.New(errorx.BadRequest, "Invalid request"))
			return
		}

		ctx := xcontext.Inherit(c.Request.Context(), router.ctx)
		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(c, err)
			return
		}

		if resp == nil {
			c.Status(http.StatusOK)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
