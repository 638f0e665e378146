package services

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisChecker probes a Redis server for the health endpoint
type RedisChecker struct {
	client *redis.Client
}

// NewRedisChecker creates a Redis client from a redis:// URL. No connection
// is opened until the first check.
func NewRedisChecker(redisURL string) (*RedisChecker, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisChecker{client: redis.NewClient(opt)}, nil
}

// Name identifies the dependency in health messages
func (c *RedisChecker) Name() string {
	return "redis"
}

// Check pings the server
func (c *RedisChecker) Check(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisChecker) Close() error {
	return c.client.Close()
}
