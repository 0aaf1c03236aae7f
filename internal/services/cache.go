package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService is the Redis-backed implementation of
// types.CacheProvider used for feed response caching.
type CacheService struct {
	client *redis.Client
}

// NewCacheService creates a new cache service instance
func NewCacheService(redisClient *redis.Client) *CacheService {
	return &CacheService{
		client: redisClient,
	}
}

// Set stores a value in cache with TTL
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get retrieves a value from cache
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("cache miss")
		}
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

// Delete removes a value from cache
func (c *CacheService) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Exists checks if a key exists in cache
func (c *CacheService) Exists(ctx context.Context, key string) bool {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false
	}
	return count > 0
}

// SetSimple stores a value without a caller-supplied context
func (c *CacheService) SetSimple(key string, value interface{}, expiration time.Duration) error {
	return c.Set(context.Background(), key, value, expiration)
}

// GetSimple retrieves a value without a caller-supplied context
func (c *CacheService) GetSimple(key string, dest interface{}) error {
	return c.Get(context.Background(), key, dest)
}
