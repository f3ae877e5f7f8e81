package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/testutil"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	ID string `uri:"id"`
}

type echoResponse struct {
	ID  string `json:"id"`
	Env string `json:"env"`
}

func newTestRouter() *Router {
	r := New(testutil.MockContext())

	GET(r, "/echo/:id", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{ID: req.ID, Env: xcontext.Configs(ctx).Env}, nil
	})

	POST(r, "/fail/:id", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.AlreadyMember, "Already member of %s", req.ID)
	})

	DELETE(r, "/panic/:id", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errors.New("database is gone")
	})

	GET(r, "/empty", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, nil
	})

	return r
}

func serve(r *Router, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_Success(t *testing.T) {
	w := serve(newTestRouter(), http.MethodGet, "/echo/abc")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"abc","env":"test"}`, w.Body.String())
}

func TestRouter_ErrorxError(t *testing.T) {
	w := serve(newTestRouter(), http.MethodPost, "/fail/abc")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"code":200001,"message":"Already member of abc"}`, w.Body.String())
}

func TestRouter_UnknownError(t *testing.T) {
	w := serve(newTestRouter(), http.MethodDelete, "/panic/abc")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"code":100000,"message":"Request failed"}`, w.Body.String())
}

func TestRouter_EmptyResponse(t *testing.T) {
	w := serve(newTestRouter(), http.MethodGet, "/empty")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
}

func TestRouter_Cors(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/echo/abc", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Websocket(t *testing.T) {
	r := newTestRouter()

	var env string
	Websocket(r, "/ws", func(ctx context.Context, w http.ResponseWriter, req *http.Request) {
		env = xcontext.Configs(ctx).Env
		w.WriteHeader(http.StatusTeapot)
	})

	w := serve(r, http.MethodGet, "/ws")
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, "test", env)
}
