package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/logger"
)

// Logger logs every request after it has been handled. Failed requests are
// logged with the error code, or -1 if the error is not an errorx.Error.
func Logger(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		info := fmt.Sprintf("%s | %s | %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
		if ginErr := c.Errors.Last(); ginErr != nil {
			var errx errorx.Error
			if errors.As(ginErr.Err, &errx) {
				l.Warnf("%s | %d", info, errx.Code)
			} else {
				l.Errorf("%s | %d", info, -1)
			}
		} else {
			l.Infof(info)
		}
	}
}
