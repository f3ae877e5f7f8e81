package statistic

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/internal/model"
	"github.com/questx-lab/leaderboard/internal/repository"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type failedCommunityRepository struct {
	repository.CommunityRepository
}

func (failedCommunityRepository) GetLeaderboard(context.Context) ([]repository.CommunityAggregate, error) {
	return nil, errors.New("connection refused")
}

func Test_leaderboard_ComputeLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	l := New(repository.NewCommunityRepository(nil), repository.NewUserRepository())
	rows, err := l.ComputeLeaderboard(ctx)
	require.NoError(t, err)

	require.Equal(t, []model.LeaderboardRow{
		{
			ID:                    testutil.Community1.ID,
			Name:                  testutil.Community1.Name,
			Logo:                  testutil.Community1.Logo,
			TotalUsers:            2,
			TotalExperiencePoints: 15,
		},
		{
			ID:                    testutil.Community2.ID,
			Name:                  testutil.Community2.Name,
			Logo:                  testutil.Community2.Logo,
			TotalUsers:            1,
			TotalExperiencePoints: 7,
		},
		{
			ID:                    testutil.Community3.ID,
			Name:                  testutil.Community3.Name,
			TotalUsers:            0,
			TotalExperiencePoints: 0,
		},
	}, rows)
}

func Test_leaderboard_ComputeLeaderboard_TieBreak(t *testing.T) {
	ctx := testutil.MockContext()
	communityRepo := repository.NewCommunityRepository(nil)

	// Inserted in reverse order of id.
	for _, id := range []string{"c", "b", "a"} {
		err := communityRepo.Create(ctx, &entity.Community{Base: entity.Base{ID: id}, Name: "name-" + id})
		require.NoError(t, err)
	}

	rows, err := New(communityRepo, repository.NewUserRepository()).ComputeLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "a", rows[0].ID)
	require.Equal(t, "b", rows[1].ID)
	require.Equal(t, "c", rows[2].ID)
}

func Test_leaderboard_ComputeLeaderboard_Example(t *testing.T) {
	ctx := testutil.MockContext()
	communityRepo := repository.NewCommunityRepository(nil)
	userRepo := repository.NewUserRepository()

	require.NoError(t, communityRepo.Create(ctx, &entity.Community{Base: entity.Base{ID: "A"}, Name: "A"}))
	require.NoError(t, communityRepo.Create(ctx, &entity.Community{Base: entity.Base{ID: "B"}, Name: "B"}))

	for _, id := range []string{"u1", "u2"} {
		require.NoError(t, userRepo.Create(ctx, &entity.User{
			Base:        entity.Base{ID: id},
			Email:       id + "@example.com",
			CommunityID: sql.NullString{Valid: true, String: "B"},
		}))
	}

	require.NoError(t, userRepo.CreateExperiencePoints(ctx, []entity.ExperiencePoint{
		{SnowFlakeBase: entity.SnowFlakeBase{ID: 1}, UserID: "u1", Points: 5},
		{SnowFlakeBase: entity.SnowFlakeBase{ID: 2}, UserID: "u1", Points: 10},
		{SnowFlakeBase: entity.SnowFlakeBase{ID: 3}, UserID: "u2", Points: 0},
	}))

	rows, err := New(communityRepo, userRepo).ComputeLeaderboard(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.LeaderboardRow{
		{ID: "B", Name: "B", TotalUsers: 2, TotalExperiencePoints: 15},
		{ID: "A", Name: "A", TotalUsers: 0, TotalExperiencePoints: 0},
	}, rows)
}

func Test_leaderboard_ComputeLeaderboard_Failure(t *testing.T) {
	ctx := testutil.MockContext()

	l := New(&failedCommunityRepository{}, repository.NewUserRepository())
	rows, err := l.ComputeLeaderboard(ctx)
	require.Nil(t, rows)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AggregationFailure, errx.Code)
}

func Test_leaderboard_ComputeUserTotals(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	l := New(repository.NewCommunityRepository(nil), repository.NewUserRepository())
	totals, err := l.ComputeUserTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, len(testutil.Users))

	byID := map[string]int64{}
	for _, u := range totals {
		byID[u.ID] = u.TotalExperience
	}

	require.Equal(t, int64(15), byID[testutil.User1.ID])
	require.Equal(t, int64(0), byID[testutil.User2.ID])
	require.Equal(t, int64(7), byID[testutil.User3.ID])
	require.Equal(t, int64(0), byID[testutil.User4.ID])
}
