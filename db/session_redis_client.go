package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionRedisClient struct holds the Redis client and context
type SessionRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewSessionRedisClient wraps an initialized go-redis client
func NewSessionRedisClient(ctx context.Context, client *redis.Client) *SessionRedisClient {
	return &SessionRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis without expiry
func (r *SessionRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithTTL sets a key-value pair that expires after ttl
func (r *SessionRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis. A missing key comes
// back as redis.Nil, which callers treat as a cache/session miss.
func (r *SessionRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys lists the keys matching the given pattern
func (r *SessionRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key
func (r *SessionRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *SessionRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	if err != nil {
		slog.Error("redis ping failed", "err", err)
	}
	return err
}

func (r *SessionRedisClient) GetContext() context.Context {
	return r.ctx
}
