package statistic

import (
	"context"

	"github.com/questx-lab/leaderboard/internal/model"
	"github.com/questx-lab/leaderboard/internal/repository"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type Leaderboard interface {
	// ComputeLeaderboard ranks all communities by their total experience
	// points. Communities having the same total are ordered by id.
	ComputeLeaderboard(ctx context.Context) ([]model.LeaderboardRow, error)

	// ComputeUserTotals returns every user with the sum of its experience
	// points.
	ComputeUserTotals(ctx context.Context) ([]model.UserTotal, error)
}

type leaderboard struct {
	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository
}

func New(
	communityRepo repository.CommunityRepository,
	userRepo repository.UserRepository,
) *leaderboard {
	return &leaderboard{communityRepo: communityRepo, userRepo: userRepo}
}

func (l *leaderboard) ComputeLeaderboard(ctx context.Context) ([]model.LeaderboardRow, error) {
	aggregates, err := l.communityRepo.GetLeaderboard(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot aggregate communities: %v", err)
		return nil, errorx.New(errorx.AggregationFailure, "Unexpected error retrieving leaderboard")
	}

	rows := make([]model.LeaderboardRow, 0, len(aggregates))
	for _, a := range aggregates {
		rows = append(rows, model.LeaderboardRow{
			ID:                    a.ID,
			Name:                  a.Name,
			Logo:                  a.Logo,
			TotalUsers:            a.TotalUsers,
			TotalExperiencePoints: a.TotalExperiencePoints,
		})
	}

	slices.SortFunc(rows, func(a, b model.LeaderboardRow) bool {
		if a.TotalExperiencePoints != b.TotalExperiencePoints {
			return a.TotalExperiencePoints > b.TotalExperiencePoints
		}

		return a.ID < b.ID
	})

	return rows, nil
}

func (l *leaderboard) ComputeUserTotals(ctx context.Context) ([]model.UserTotal, error) {
	totals, err := l.userRepo.GetTotals(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot aggregate users: %v", err)
		return nil, errorx.New(errorx.AggregationFailure, "Unexpected error retrieving users")
	}

	result := make([]model.UserTotal, 0, len(totals))
	for _, u := range totals {
		result = append(result, model.UserTotal{
			ID:              u.ID,
			Email:           u.Email,
			ProfilePicture:  u.ProfilePicture,
			TotalExperience: u.TotalExperience,
		})
	}

	return result, nil
}
