package domain

import (
	"context"
	"errors"

	"github.com/questx-lab/leaderboard/internal/domain/statistic"
	"github.com/questx-lab/leaderboard/internal/model"
	"github.com/questx-lab/leaderboard/internal/repository"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"gorm.io/gorm"
)

type CommunityDomain interface {
	Get(context.Context, *model.GetCommunityRequest) (*model.GetCommunityResponse, error)
	GetList(context.Context, *model.GetCommunitiesRequest) (*model.GetCommunitiesResponse, error)
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
}

type communityDomain struct {
	communityRepo repository.CommunityRepository
	leaderboard   statistic.Leaderboard
}

func NewCommunityDomain(
	communityRepo repository.CommunityRepository,
	leaderboard statistic.Leaderboard,
) CommunityDomain {
	return &communityDomain{
		communityRepo: communityRepo,
		leaderboard:   leaderboard,
	}
}

func (d *communityDomain) Get(
	ctx context.Context, req *model.GetCommunityRequest,
) (*model.GetCommunityResponse, error) {
	community, err := d.communityRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Community not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get the community: %v", err)
		return nil, errorx.New(errorx.Internal, "Unexpected error retrieving community")
	}

	resp := model.GetCommunityResponse(convertCommunity(community))
	return &resp, nil
}

func (d *communityDomain) GetList(
	ctx context.Context, req *model.GetCommunitiesRequest,
) (*model.GetCommunitiesResponse, error) {
	communities, err := d.communityRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get community list: %v", err)
		return nil, errorx.New(errorx.Internal, "Unexpected error retrieving communities")
	}

	resp := model.GetCommunitiesResponse{}
	for i := range communities {
		resp = append(resp, convertCommunity(&communities[i]))
	}

	return &resp, nil
}

func (d *communityDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	rows, err := d.leaderboard.ComputeLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	resp := model.GetLeaderboardResponse(rows)
	return &resp, nil
}
