package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/questx-lab/leaderboard/internal/entity"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/questx-lab/leaderboard/pkg/xredis"
)

// CommunityAggregate is one community joined with its members. The order of a
// list of CommunityAggregate is unspecified.
type CommunityAggregate struct {
	ID                    string
	Name                  string
	Logo                  string
	TotalUsers            int64
	TotalExperiencePoints int64
}

type CommunityRepository interface {
	Create(ctx context.Context, e *entity.Community) error
	GetByID(ctx context.Context, id string) (*entity.Community, error)
	GetByIDNoCache(ctx context.Context, id string) (*entity.Community, error)
	GetList(ctx context.Context) ([]entity.Community, error)
	GetLeaderboard(ctx context.Context) ([]CommunityAggregate, error)
}

type communityRepository struct {
	redisClient xredis.Client
}

// NewCommunityRepository creates the repository. The redisClient can be nil,
// in this case, community records are always read from database.
func NewCommunityRepository(redisClient xredis.Client) CommunityRepository {
	return &communityRepository{redisClient: redisClient}
}

func (r *communityRepository) cacheKeyByID(communityID string) string {
	return fmt.Sprintf("cache:community:%s", communityID)
}

func (r *communityRepository) cache(ctx context.Context, communities ...entity.Community) {
	if r.redisClient == nil || len(communities) == 0 {
		return
	}

	redisKV := map[string]any{}
	for _, record := range communities {
		redisKV[r.cacheKeyByID(record.ID)] = record
	}

	ttl := xcontext.Configs(ctx).Redis.CacheTTL
	if err := r.redisClient.MSet(ctx, redisKV, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot multiple set for community redis: %v", err)
	}
}

func (r *communityRepository) fromCacheByID(ctx context.Context, id string) *entity.Community {
	if r.redisClient == nil {
		return nil
	}

	values, err := r.redisClient.MGet(ctx, r.cacheKeyByID(id))
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get community from redis: %v", err)
		return nil
	}

	if len(values) == 0 || values[0] == nil {
		return nil
	}

	s, ok := values[0].(string)
	if !ok {
		xcontext.Logger(ctx).Warnf("Invalid type of community %T", values[0])
		return nil
	}

	var result entity.Community
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot unmarshal community object: %v", err)
		return nil
	}

	return &result
}

func (r *communityRepository) Create(ctx context.Context, e *entity.Community) error {
	if err := xcontext.DB(ctx).Create(e).Error; err != nil {
		return err
	}

	if r.redisClient != nil {
		if err := r.redisClient.Del(ctx, r.cacheKeyByID(e.ID)); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot invalidate community redis key: %v", err)
		}
	}

	return nil
}

func (r *communityRepository) GetByID(ctx context.Context, id string) (*entity.Community, error) {
	if c := r.fromCacheByID(ctx, id); c != nil {
		return c, nil
	}

	record, err := r.GetByIDNoCache(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cache(ctx, *record)
	return record, nil
}

// GetByIDNoCache always reads the community from database. Use it when a
// stale record is not acceptable, e.g. to check whether a community still
// exists.
func (r *communityRepository) GetByIDNoCache(ctx context.Context, id string) (*entity.Community, error) {
	var record entity.Community
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *communityRepository) GetList(ctx context.Context) ([]entity.Community, error) {
	var result []entity.Community
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// GetLeaderboard left-joins every community with its members and their
// experience points. Communities without any member are included with zero
// totals.
func (r *communityRepository) GetLeaderboard(ctx context.Context) ([]CommunityAggregate, error) {
	var result []CommunityAggregate
	err := xcontext.DB(ctx).
		Model(&entity.Community{}).
		Select(
			"communities.id AS id",
			"communities.name AS name",
			"communities.logo AS logo",
			"COUNT(DISTINCT users.id) AS total_users",
			"COALESCE(SUM(experience_points.points), 0) AS total_experience_points",
		).
		Joins("LEFT JOIN users ON users.community_id = communities.id").
		Joins("LEFT JOIN experience_points ON experience_points.user_id = users.id").
		Group("communities.id, communities.name, communities.logo").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
