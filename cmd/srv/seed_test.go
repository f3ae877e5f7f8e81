package main

import (
	"testing"

	"github.com/questx-lab/leaderboard/internal/domain/statistic"
	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/internal/repository"
	"github.com/questx-lab/leaderboard/pkg/testutil"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_seed(t *testing.T) {
	ctx := testutil.MockContext()
	require.NoError(t, seed(ctx, "testdata/seed.toml"))

	rows, err := statistic.New(repository.NewCommunityRepository(nil), repository.NewUserRepository()).
		ComputeLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "gophers", rows[0].ID)
	require.Equal(t, int64(2), rows[0].TotalUsers)
	require.Equal(t, int64(15), rows[0].TotalExperiencePoints)

	require.Equal(t, "Rustaceans", rows[1].Name)
	require.Equal(t, int64(7), rows[1].TotalExperiencePoints)

	require.Equal(t, "pythonistas", rows[2].ID)
	require.Equal(t, int64(0), rows[2].TotalUsers)

	user, err := repository.NewUserRepository().GetByIDWithExperience(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, user.ExperiencePoints, 1)
	require.False(t, user.ExperiencePoints[0].Timestamp.IsZero())
}

func Test_seed_Invalid(t *testing.T) {
	ctx := testutil.MockContext()
	require.Error(t, seed(ctx, "testdata/seed_invalid.toml"))

	var count int64
	require.NoError(t, xcontext.DB(ctx).Model(&entity.Community{}).Count(&count).Error)
	require.Zero(t, count)
}

func Test_seed_Rollback(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	// The community id "gophers" is new but its name conflicts with the
	// fixture, so the whole file is rejected.
	require.Error(t, seed(ctx, "testdata/seed.toml"))

	var count int64
	require.NoError(t, xcontext.DB(ctx).Model(&entity.Community{}).Count(&count).Error)
	require.Equal(t, int64(len(testutil.Communities)), count)
}

func Test_seed_MissingFile(t *testing.T) {
	ctx := testutil.MockContext()
	require.Error(t, seed(ctx, "testdata/not_found.toml"))
}
