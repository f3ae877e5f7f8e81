package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/stretchr/testify/require"
)

type recordLogger struct {
	lines []string
}

func (l *recordLogger) Debugf(msg string, a ...any) { l.lines = append(l.lines, "D "+fmt.Sprintf(msg, a...)) }
func (l *recordLogger) Infof(msg string, a ...any)  { l.lines = append(l.lines, "I "+fmt.Sprintf(msg, a...)) }
func (l *recordLogger) Warnf(msg string, a ...any)  { l.lines = append(l.lines, "W "+fmt.Sprintf(msg, a...)) }
func (l *recordLogger) Errorf(msg string, a ...any) { l.lines = append(l.lines, "E "+fmt.Sprintf(msg, a...)) }
func (l *recordLogger) Sync() error                  { return nil }

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := &recordLogger{}
	engine := gin.New()
	engine.Use(Logger(l))
	engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/not-found", func(c *gin.Context) {
		_ = c.Error(errorx.New(errorx.NotFound, "User not found"))
		c.Status(http.StatusNotFound)
	})
	engine.GET("/unknown", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
		c.Status(http.StatusInternalServerError)
	})

	for _, path := range []string{"/ok", "/not-found", "/unknown"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, []string{
		"I GET | /ok | 200",
		"W GET | /not-found | 404 | 100004",
		"E GET | /unknown | 500 | -1",
	}, l.lines)
}
