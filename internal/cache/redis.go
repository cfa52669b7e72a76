// Package cache keeps a per-user copy of the todo list in Redis so GET
// /todos can skip the database while the list is unchanged. Every miss or
// Redis error degrades to the database path.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"todolist-backend/internal/todo/domain"
)

type TodoCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// New connects to Redis at redisURL. An empty URL or a failed ping returns
// (nil, nil): the caller runs without a cache.
func New(ctx context.Context, redisURL string, ttl time.Duration, log *zap.Logger) (*TodoCache, error) {
	if redisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, todo list cache disabled", zap.Error(err))
		_ = client.Close()
		return nil, nil
	}
	return &TodoCache{client: client, ttl: ttl, log: log}, nil
}

func key(userID string) string {
	return "todos:user:" + userID
}

// GetTodos reads the cached list for a user. Returns (nil, false) on miss.
func (c *TodoCache) GetTodos(ctx context.Context, userID string) ([]*domain.Todo, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.client.Get(ctx, key(userID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Debug("redis get failed", zap.Error(err))
		return nil, false
	}
	var todos []*domain.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		c.log.Debug("cache unmarshal failed", zap.Error(err))
		return nil, false
	}
	return todos, true
}

// SetTodos stores the list for a user with the configured TTL.
func (c *TodoCache) SetTodos(ctx context.Context, userID string, todos []*domain.Todo) {
	if c == nil {
		return
	}
	b, err := json.Marshal(todos)
	if err != nil {
		c.log.Debug("cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key(userID), b, c.ttl).Err(); err != nil {
		c.log.Debug("redis set failed", zap.Error(err))
	}
}

// Invalidate drops a user's cached list so the next read hits the database.
func (c *TodoCache) Invalidate(ctx context.Context, userID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		c.log.Debug("redis del failed", zap.Error(err))
	}
}

// InvalidateAll drops every cached todo list. Used after the expiry sweep,
// which can touch any user's todos in one statement.
func (c *TodoCache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, "todos:user:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Debug("redis del failed", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Debug("redis scan failed", zap.Error(err))
	}
}

// Close releases the underlying Redis connection.
func (c *TodoCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
