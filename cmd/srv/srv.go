package main

import (
	"context"
	"fmt"

	"github.com/questx-lab/leaderboard/internal/domain"
	"github.com/questx-lab/leaderboard/internal/domain/notification"
	"github.com/questx-lab/leaderboard/internal/domain/statistic"
	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/internal/repository"
	"github.com/questx-lab/leaderboard/pkg/logger"
	"github.com/questx-lab/leaderboard/pkg/router"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/questx-lab/leaderboard/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	redisClient xredis.Client

	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository

	leaderboard statistic.Leaderboard
	hub         *notification.Hub

	communityDomain  domain.CommunityDomain
	userDomain       domain.UserDomain
	membershipDomain domain.MembershipDomain
	settingDomain    domain.SettingDomain

	router *router.Router
}

func (s *srv) loadLogger() {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(cfg.LogLevel, cfg.Env == "local"))
}

func (s *srv) newDatabase() (*gorm.DB, error) {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.ConnectionString())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "sqlite" {
		// sqlite doesn't support concurrent writers.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func (s *srv) loadDatabase() error {
	db, err := s.newDatabase()
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	return nil
}

func (s *srv) migrateDB() error {
	return entity.MigrateTable(s.ctx)
}

// loadRedisClient connects to redis if it is configured. The server keeps
// working without cache if redis is unavailable.
func (s *srv) loadRedisClient() {
	if xcontext.Configs(s.ctx).Redis.Addr == "" {
		xcontext.Logger(s.ctx).Infof("Redis is not configured, community cache is disabled")
		return
	}

	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		xcontext.Logger(s.ctx).Warnf("Cannot connect to redis, community cache is disabled: %v", err)
		return
	}

	s.redisClient = client
}

func (s *srv) loadRepos() {
	s.communityRepo = repository.NewCommunityRepository(s.redisClient)
	s.userRepo = repository.NewUserRepository()
}

func (s *srv) loadDomains() {
	cfg := xcontext.Configs(s.ctx)

	s.leaderboard = statistic.New(s.communityRepo, s.userRepo)
	s.hub = notification.NewHub(cfg.ApiServer.AllowedOrigins)

	s.communityDomain = domain.NewCommunityDomain(s.communityRepo, s.leaderboard)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.leaderboard)
	s.membershipDomain = domain.NewMembershipDomain(s.userRepo, s.communityRepo)
	s.settingDomain = domain.NewSettingDomain()
}
