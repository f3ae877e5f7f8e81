package xredis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"github.com/redis/go-redis/v9"
)

type Client interface {
	Del(ctx context.Context, key ...string) error

	// Single object
	MSet(ctx context.Context, kv map[string]any, ttl time.Duration) error
	MGet(ctx context.Context, keys ...string) ([]any, error)

	Close() error
}

type client struct {
	redisClient *redis.Client
}

func NewClient(ctx context.Context) (*client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:            xcontext.Configs(ctx).Redis.Addr,
		MaxRetries:      5,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		PoolFIFO:        false,
		PoolSize:        5,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{redisClient: redisClient}, nil
}

func (c *client) Del(ctx context.Context, key ...string) error {
	err := c.redisClient.Del(ctx, key...).Err()
	if err == nil || err == redis.Nil {
		return nil
	}

	return err
}

// MSet stores all key-value pairs in one round trip. Non-string values are
// stored as json. A zero ttl means the keys never expire.
func (c *client) MSet(ctx context.Context, kv map[string]any, ttl time.Duration) error {
	pipe := c.redisClient.Pipeline()
	for k, v := range kv {
		s, ok := v.(string)
		if !ok {
			b, err := json.Marshal(v)
			if err != nil {
				return err
			}

			s = string(b)
		}

		pipe.Set(ctx, k, s, ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (c *client) MGet(ctx context.Context, keys ...string) ([]any, error) {
	return c.redisClient.MGet(ctx, keys...).Result()
}

func (c *client) Close() error {
	return c.redisClient.Close()
}
