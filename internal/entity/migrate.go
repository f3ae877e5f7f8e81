package entity

import (
	"context"

	"github.com/questx-lab/leaderboard/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Community{},
		&User{},
		&ExperiencePoint{},
	)
}
