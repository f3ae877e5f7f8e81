package domain

import (
	"time"

	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/internal/model"
)

const defaultTimeLayout string = time.RFC3339Nano

func convertCommunity(community *entity.Community) model.Community {
	if community == nil {
		return model.Community{}
	}

	return model.Community{
		ID:   community.ID,
		Name: community.Name,
		Logo: community.Logo,
	}
}

func convertExperiencePoint(point *entity.ExperiencePoint) model.ExperiencePoint {
	if point == nil {
		return model.ExperiencePoint{}
	}

	return model.ExperiencePoint{
		ID:        point.ID,
		Points:    point.Points,
		Source:    point.Source,
		Timestamp: point.Timestamp.UTC().Format(defaultTimeLayout),
	}
}

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	var community *string
	if user.CommunityID.Valid {
		community = &user.CommunityID.String
	}

	points := []model.ExperiencePoint{}
	for i := range user.ExperiencePoints {
		points = append(points, convertExperiencePoint(&user.ExperiencePoints[i]))
	}

	return model.User{
		ID:               user.ID,
		Email:            user.Email,
		ProfilePicture:   user.ProfilePicture,
		Community:        community,
		ExperiencePoints: points,
	}
}
