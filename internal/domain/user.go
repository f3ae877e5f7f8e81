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

type UserDomain interface {
	Get(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	GetList(context.Context, *model.GetUsersRequest) (*model.GetUsersResponse, error)
}

type userDomain struct {
	userRepo    repository.UserRepository
	leaderboard statistic.Leaderboard
}

func NewUserDomain(
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
) UserDomain {
	return &userDomain{
		userRepo:    userRepo,
		leaderboard: leaderboard,
	}
}

func (d *userDomain) Get(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByIDWithExperience(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get the user: %v", err)
		return nil, errorx.New(errorx.Internal, "Unexpected error retrieving user")
	}

	resp := model.GetUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) GetList(
	ctx context.Context, req *model.GetUsersRequest,
) (*model.GetUsersResponse, error) {
	totals, err := d.leaderboard.ComputeUserTotals(ctx)
	if err != nil {
		return nil, err
	}

	resp := model.GetUsersResponse(totals)
	return &resp, nil
}
