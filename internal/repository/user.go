package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"gorm.io/gorm"
)

// ErrConflict is returned by a conditional update when the row was changed
// after it had been read.
var ErrConflict = errors.New("row has been modified concurrently")

type UserTotal struct {
	ID              string
	Email           string
	ProfilePicture  string
	TotalExperience int64
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDWithExperience(ctx context.Context, id string) (*entity.User, error)
	GetTotals(ctx context.Context) ([]UserTotal, error)
	UpdateCommunity(ctx context.Context, userID string, from, to sql.NullString) error
	CreateExperiencePoints(ctx context.Context, points []entity.ExperiencePoint) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Omit("ExperiencePoints").Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByIDWithExperience(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	err := xcontext.DB(ctx).
		Preload("ExperiencePoints", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, id ASC")
		}).
		Where("id=?", id).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetTotals returns every user with the sum of its experience points. Users
// without any experience point have a zero total.
func (r *userRepository) GetTotals(ctx context.Context) ([]UserTotal, error) {
	var result []UserTotal
	err := xcontext.DB(ctx).
		Model(&entity.User{}).
		Select(
			"users.id AS id",
			"users.email AS email",
			"users.profile_picture AS profile_picture",
			"COALESCE(SUM(experience_points.points), 0) AS total_experience",
		).
		Joins("LEFT JOIN experience_points ON experience_points.user_id = users.id").
		Group("users.id, users.email, users.profile_picture").
		Order("users.id ASC").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateCommunity changes the community of user only if its current community
// is still from. It returns gorm.ErrRecordNotFound if the user doesn't exist
// and ErrConflict if the community was changed by someone else.
func (r *userRepository) UpdateCommunity(ctx context.Context, userID string, from, to sql.NullString) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", userID)
	if from.Valid {
		tx = tx.Where("community_id=?", from.String)
	} else {
		tx = tx.Where("community_id IS NULL")
	}

	tx = tx.Update("community_id", to)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		var count int64
		if err := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", userID).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		return ErrConflict
	}

	return nil
}

func (r *userRepository) CreateExperiencePoints(ctx context.Context, points []entity.ExperiencePoint) error {
	if len(points) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Create(&points).Error
}
