package xcontext

import (
	"context"

	"github.com/questx-lab/leaderboard/config"
	"github.com/questx-lab/leaderboard/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey struct{}
	loggerKey  struct{}
	dbKey      struct{}
	dbTxKey    struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Configs{}
	}

	return cfg
}

func WithLogger(ctx context.Context, logger logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewNopLogger()
	}

	return l
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the running transaction if it exists, otherwise, returns the
// database stored by WithDB. The returned session is bound to ctx.
func DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(dbTxKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		return nil
	}

	return db.WithContext(ctx)
}

// Inherit copies configs, logger and database of base into ctx. It is used to
// bind the application values to the context of an incoming request.
func Inherit(ctx, base context.Context) context.Context {
	if cfg, ok := base.Value(configsKey{}).(config.Configs); ok {
		ctx = WithConfigs(ctx, cfg)
	}

	if l, ok := base.Value(loggerKey{}).(logger.Logger); ok {
		ctx = WithLogger(ctx, l)
	}

	if db, ok := base.Value(dbKey{}).(*gorm.DB); ok {
		ctx = WithDB(ctx, db)
	}

	return ctx
}
