package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/internal/repository"
)

var (
	// Community1 has User1 and User2 (15 points in total).
	Community1 = entity.Community{
		Base: entity.Base{ID: "community1"},
		Name: "Gophers",
		Logo: "https://example.com/gophers.png",
	}

	// Community2 has User3 (7 points in total).
	Community2 = entity.Community{
		Base: entity.Base{ID: "community2"},
		Name: "Rustaceans",
		Logo: "https://example.com/rustaceans.png",
	}

	// Community3 has no member.
	Community3 = entity.Community{
		Base: entity.Base{ID: "community3"},
		Name: "Pythonistas",
	}

	User1 = entity.User{
		Base:           entity.Base{ID: "user1"},
		Email:          "user1@example.com",
		ProfilePicture: "https://example.com/user1.png",
		CommunityID:    sql.NullString{Valid: true, String: Community1.ID},
	}

	User2 = entity.User{
		Base:        entity.Base{ID: "user2"},
		Email:       "user2@example.com",
		CommunityID: sql.NullString{Valid: true, String: Community1.ID},
	}

	User3 = entity.User{
		Base:        entity.Base{ID: "user3"},
		Email:       "user3@example.com",
		CommunityID: sql.NullString{Valid: true, String: Community2.ID},
	}

	// User4 has no community and no experience point.
	User4 = entity.User{
		Base:  entity.Base{ID: "user4"},
		Email: "user4@example.com",
	}

	Users = []*entity.User{&User1, &User2, &User3, &User4}

	Communities = []*entity.Community{&Community1, &Community2, &Community3}

	fixtureTime = time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)

	ExperiencePoints = []entity.ExperiencePoint{
		{SnowFlakeBase: entity.SnowFlakeBase{ID: 1}, UserID: User1.ID, Points: 5, Source: "quest", Timestamp: fixtureTime},
		{SnowFlakeBase: entity.SnowFlakeBase{ID: 2}, UserID: User1.ID, Points: 10, Source: "quest", Timestamp: fixtureTime.Add(time.Hour)},
		{SnowFlakeBase: entity.SnowFlakeBase{ID: 3}, UserID: User2.ID, Points: 0, Source: "signup", Timestamp: fixtureTime},
		{SnowFlakeBase: entity.SnowFlakeBase{ID: 4}, UserID: User3.ID, Points: 7, Source: "quest", Timestamp: fixtureTime},
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertCommunities(ctx)
	InsertUsers(ctx)
	InsertExperiencePoints(ctx)
}

func InsertCommunities(ctx context.Context) {
	communityRepo := repository.NewCommunityRepository(nil)
	for _, c := range Communities {
		if err := communityRepo.Create(ctx, c); err != nil {
			panic(err)
		}
	}
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, u := range Users {
		if err := userRepo.Create(ctx, u); err != nil {
			panic(err)
		}
	}
}

func InsertExperiencePoints(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	points := make([]entity.ExperiencePoint, len(ExperiencePoints))
	copy(points, ExperiencePoints)
	if err := userRepo.CreateExperiencePoints(ctx, points); err != nil {
		panic(err)
	}
}
