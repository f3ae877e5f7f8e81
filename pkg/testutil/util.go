package testutil

import (
	"context"
	"time"

	"github.com/questx-lab/leaderboard/config"
	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/pkg/logger"
	"github.com/questx-lab/leaderboard/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockConfigs() config.Configs {
	return config.Configs{
		Env:      "test",
		LogLevel: "debug",
		ApiServer: config.APIServerConfigs{
			ServerConfigs:  config.ServerConfigs{Host: "localhost", Port: "8080"},
			AllowedOrigins: []string{"*"},
		},
		Redis: config.RedisConfigs{
			CacheTTL: time.Minute,
		},
		Leaderboard: config.LeaderboardConfigs{
			BroadcastInterval:   5 * time.Second,
			WebsocketPath:       "/",
			MaxDisplayedResults: 10,
		},
	}
}

// MockContext returns a context holding an empty in-memory database with all
// tables migrated.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// Every new connection to :memory: opens another empty database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
