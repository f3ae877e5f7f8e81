package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/questx-lab/leaderboard/internal/common"
	"github.com/questx-lab/leaderboard/internal/model"
	"github.com/questx-lab/leaderboard/internal/repository"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"gorm.io/gorm"
)

type MembershipDomain interface {
	Join(context.Context, *model.JoinCommunityRequest) (*model.JoinCommunityResponse, error)
	Leave(context.Context, *model.LeaveCommunityRequest) (*model.LeaveCommunityResponse, error)
}

type membershipDomain struct {
	userRepo      repository.UserRepository
	communityRepo repository.CommunityRepository
	userMutex     *common.KeyedMutex
}

func NewMembershipDomain(
	userRepo repository.UserRepository,
	communityRepo repository.CommunityRepository,
) MembershipDomain {
	return &membershipDomain{
		userRepo:      userRepo,
		communityRepo: communityRepo,
		userMutex:     common.NewKeyedMutex(),
	}
}

func (d *membershipDomain) Join(
	ctx context.Context, req *model.JoinCommunityRequest,
) (*model.JoinCommunityResponse, error) {
	unlock := d.userMutex.Lock(req.UserID)
	defer unlock()

	user, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user to join community: %v", err)
		return nil, errorx.New(errorx.Internal, "Unexpected error while joining community")
	}

	target, err := d.communityRepo.GetByIDNoCache(ctx, req.CommunityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Community not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get community to join: %v", err)
		return nil, errorx.New(errorx.Internal, "Unexpected error while joining community")
	}

	if user.CommunityID.Valid {
		if user.CommunityID.String == target.ID {
			return &model.JoinCommunityResponse{Message: "User is already in this community."}, nil
		}

		current, err := d.communityRepo.GetByIDNoCache(ctx, user.CommunityID.String)
		switch {
		case err == nil:
			return nil, errorx.New(errorx.AlreadyMember,
				"User is already a member of another community (%s), please leave first.", current.Name)

		case errors.Is(err, gorm.ErrRecordNotFound):
			// The current community was removed, the user is free to join.
			xcontext.Logger(ctx).Debugf("User %s refers to a missing community %s",
				user.ID, user.CommunityID.String)

		default:
			xcontext.Logger(ctx).Errorf("Cannot get current community of user: %v", err)
			return nil, errorx.New(errorx.Internal, "Unexpected error while joining community")
		}
	}

	err = d.userRepo.UpdateCommunity(ctx, user.ID, user.CommunityID,
		sql.NullString{Valid: true, String: target.ID})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot update community of user: %v", err)
		return nil, errorx.New(errorx.Internal, "Unexpected error while joining community")
	}

	return &model.JoinCommunityResponse{Message: "User has successfully joined the community"}, nil
}

func (d *membershipDomain) Leave(
	ctx context.Context, req *model.LeaveCommunityRequest,
) (*model.LeaveCommunityResponse, error) {
	unlock := d.userMutex.Lock(req.UserID)
	defer unlock()

	user, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user to leave community: %v", err)
		return nil, errorx.New(errorx.Internal, "Unexpected error while leaving community")
	}

	if !user.CommunityID.Valid {
		return nil, errorx.New(errorx.NotMember, "User is not a member of any community yet")
	}

	if user.CommunityID.String != req.CommunityID {
		return nil, errorx.New(errorx.NotMember, "User is not a member of this community")
	}

	err = d.userRepo.UpdateCommunity(ctx, user.ID, user.CommunityID, sql.NullString{})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot clear community of user: %v", err)
		return nil, errorx.New(errorx.Internal, "Unexpected error while leaving community")
	}

	community, err := d.communityRepo.GetByIDNoCache(ctx, req.CommunityID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf("Cannot get the left community: %v", err)
		}

		return &model.LeaveCommunityResponse{Message: "User has successfully left this community"}, nil
	}

	return &model.LeaveCommunityResponse{
		Message: fmt.Sprintf("User has successfully left the community of %s", community.Name),
	}, nil
}
