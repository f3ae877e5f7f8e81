package xcontext

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

func WithDBTransaction(ctx context.Context) context.Context {
	tx := DB(ctx).Begin()
	return context.WithValue(ctx, dbTxKey{}, tx)
}

// CommitDBTransaction commits the transaction started by WithDBTransaction.
func CommitDBTransaction(ctx context.Context) error {
	tx, ok := ctx.Value(dbTxKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction in context")
	}

	return tx.Commit().Error
}

// WithRollbackDBTransaction rollbacks the transaction. Rolling back a
// committed transaction has no effect, so it is safe to defer this call right
// after WithDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	tx, ok := ctx.Value(dbTxKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return ctx
	}

	tx.Rollback()
	return context.WithValue(ctx, dbTxKey{}, nil)
}
