package main

import (
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	if err := s.loadDatabase(); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot connect to database: %v", err)
		return errorx.New(errorx.Unavailable, "Database is unavailable")
	}

	if err := s.migrateDB(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Migrated database successfully")
	return nil
}
