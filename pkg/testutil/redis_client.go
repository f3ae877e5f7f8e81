package testutil

import (
	"context"
	"time"
)

type MockRedisClient struct {
	DelFunc  func(ctx context.Context, keys ...string) error
	MSetFunc func(ctx context.Context, kv map[string]any, ttl time.Duration) error
	MGetFunc func(ctx context.Context, keys ...string) ([]any, error)
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, keys...)
	}

	return nil
}

func (m *MockRedisClient) MSet(ctx context.Context, kv map[string]any, ttl time.Duration) error {
	if m.MSetFunc != nil {
		return m.MSetFunc(ctx, kv, ttl)
	}

	return nil
}

func (m *MockRedisClient) MGet(ctx context.Context, keys ...string) ([]any, error) {
	if m.MGetFunc != nil {
		return m.MGetFunc(ctx, keys...)
	}

	return make([]any, len(keys)), nil
}

func (m *MockRedisClient) Close() error {
	return nil
}
