package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/internal/repository"
	"github.com/questx-lab/leaderboard/pkg/errorx"
	"github.com/questx-lab/leaderboard/pkg/idutil"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type seedFile struct {
	Communities []seedCommunity `toml:"communities"`
	Users       []seedUser      `toml:"users"`
}

type seedCommunity struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
	Logo string `toml:"logo"`
}

type seedUser struct {
	ID             string `toml:"id"`
	Email          string `toml:"email"`
	ProfilePicture string `toml:"profile_picture"`

	// Community is the name of a community in the same file.
	Community        string                `toml:"community"`
	ExperiencePoints []seedExperiencePoint `toml:"experience_points"`
}

type seedExperiencePoint struct {
	Points    int64     `toml:"points"`
	Source    string    `toml:"source"`
	Timestamp time.Time `toml:"timestamp"`
}

func (s *srv) startSeed(cctx *cli.Context) error {
	if err := s.loadDatabase(); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot connect to database: %v", err)
		return errorx.New(errorx.Unavailable, "Database is unavailable")
	}

	if err := s.migrateDB(); err != nil {
		return err
	}

	return seed(s.ctx, cctx.String("file"))
}

// seed inserts all records of the toml file at path. Nothing is inserted if
// any record is invalid.
func seed(ctx context.Context, path string) error {
	var file seedFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("cannot decode seed file: %w", err)
	}

	communities := []entity.Community{}
	communityIDs := map[string]string{}
	for _, c := range file.Communities {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}

		communityIDs[c.Name] = c.ID
		communities = append(communities, entity.Community{
			Base: entity.Base{ID: c.ID},
			Name: c.Name,
			Logo: c.Logo,
		})
	}

	users := []entity.User{}
	points := []entity.ExperiencePoint{}
	for _, u := range file.Users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}

		communityID := sql.NullString{}
		if u.Community != "" {
			id, ok := communityIDs[u.Community]
			if !ok {
				return fmt.Errorf("user %s refers to unknown community %s", u.Email, u.Community)
			}
			communityID = sql.NullString{Valid: true, String: id}
		}

		users = append(users, entity.User{
			Base:           entity.Base{ID: u.ID},
			Email:          u.Email,
			ProfilePicture: u.ProfilePicture,
			CommunityID:    communityID,
		})

		for _, p := range u.ExperiencePoints {
			if p.Timestamp.IsZero() {
				p.Timestamp = time.Now()
			}

			points = append(points, entity.ExperiencePoint{
				SnowFlakeBase: entity.SnowFlakeBase{ID: idutil.GenerateSnowflake()},
				UserID:        u.ID,
				Points:        p.Points,
				Source:        p.Source,
				Timestamp:     p.Timestamp,
			})
		}
	}

	communityRepo := repository.NewCommunityRepository(nil)
	userRepo := repository.NewUserRepository()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	for i := range communities {
		if err := communityRepo.Create(ctx, &communities[i]); err != nil {
			return fmt.Errorf("cannot create community %s: %w", communities[i].Name, err)
		}
	}

	for i := range users {
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("cannot create user %s: %w", users[i].Email, err)
		}
	}

	if err := userRepo.CreateExperiencePoints(ctx, points); err != nil {
		return fmt.Errorf("cannot create experience points: %w", err)
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		return fmt.Errorf("cannot commit seed transaction: %w", err)
	}

	xcontext.Logger(ctx).Infof("Seeded %d communities, %d users and %d experience points",
		len(communities), len(users), len(points))
	return nil
}
