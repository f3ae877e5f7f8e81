package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/rs/cors"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

type WebsocketFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request)

type Router struct {
	Inner gin.IRouter

	// ctx holds the application values (configs, logger, database) which are
	// bound to the context of every request.
	ctx context.Context
}

func New(ctx context.Context) *Router {
	if xcontext.Configs(ctx).Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{Inner: gin.New(), ctx: ctx}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, handler))
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.DELETE(pattern, wrapHandler(r, handler))
}

// Websocket registers a GET handler which takes over the connection.
func Websocket(r *Router, pattern string, handler WebsocketFunc) {
	r.Inner.GET(pattern, func(c *gin.Context) {
		handler(xcontext.Inherit(c.Request.Context(), r.ctx), c.Writer, c.Request)
	})
}

func (r *Router) Use(middleware ...gin.HandlerFunc) {
	r.Inner.Use(middleware...)
}

// Handler returns the root handler. Cross-origin requests are only allowed
// from the configured origins.
func (r *Router) Handler() http.Handler {
	engine, ok := r.Inner.(*gin.Engine)
	if !ok {
		panic("handler is only available on the root router")
	}

	return cors.New(cors.Options{
		AllowedOrigins: xcontext.Configs(r.ctx).ApiServer.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
	}).Handler(engine)
}
