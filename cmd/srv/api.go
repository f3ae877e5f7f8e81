package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/leaderboard/internal/domain/cron"
	"github.com/questx-lab/leaderboard/internal/middleware"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/router"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func (s *srv) startApi(*cli.Context) error {
	if err := s.loadDatabase(); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot connect to database: %v", err)
		return errorx.New(errorx.Unavailable, "Database is unavailable")
	}

	if err := s.migrateDB(); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot migrate database: %v", err)
		return err
	}

	s.loadRedisClient()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return s.serveApi(ctx)
}

func (s *srv) loadRouter() {
	cfg := xcontext.Configs(s.ctx)

	s.router = router.New(s.ctx)
	s.router.Use(middleware.Logger(xcontext.Logger(s.ctx)), gin.Recovery())

	// Community API
	router.GET(s.router, "/community/top", s.communityDomain.GetLeaderboard)
	router.GET(s.router, "/community/:id", s.communityDomain.Get)
	router.GET(s.router, "/community", s.communityDomain.GetList)

	// User API
	router.GET(s.router, "/user/:id", s.userDomain.Get)
	router.GET(s.router, "/user", s.userDomain.GetList)
	router.POST(s.router, "/user/:id/join/:communityID", s.membershipDomain.Join)
	router.DELETE(s.router, "/user/:id/leave/:communityID", s.membershipDomain.Leave)

	// Setting API
	router.GET(s.router, "/config", s.settingDomain.Get)

	router.Websocket(s.router, cfg.Leaderboard.WebsocketPath, s.hub.ServeWebsocket)
}

// serveApi runs the http server and the broadcast job until ctx is done or
// one of them fails.
func (s *srv) serveApi(ctx context.Context) error {
	cfg := xcontext.Configs(ctx)
	httpSrv := &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		xcontext.Logger(ctx).Infof("Server start in port: %s", cfg.ApiServer.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		cron.NewCronJobManager().Start(ctx,
			cron.NewBroadcastLeaderboardCronJob(s.leaderboard, s.hub, cfg.Leaderboard.BroadcastInterval),
		)
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.hub.Close()
		return httpSrv.Shutdown(shutdownCtx)
	})

	err := eg.Wait()
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot close redis client: %v", err)
		}
	}

	xcontext.Logger(ctx).Infof("Server stop")
	return err
}
