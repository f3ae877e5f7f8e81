package router

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/leaderboard/pkg/errorx"
)

type errorResponse struct {
	Code    errorx.Code `json:"code"`
	Message string      `json:"message"`
}

func newErrorResponse(err error) (int, errorResponse) {
	errx := errorx.Unknown
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	return errx.HTTPStatus(), errorResponse{Code: errx.Code, Message: errx.Message}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, resp := newErrorResponse(err)
	c.JSON(status, resp)
}
