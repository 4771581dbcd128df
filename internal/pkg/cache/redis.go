package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chaesu44438/emotion-theater/internal/config"
)

// RedisCache wraps a Redis connection for JSON value caching.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg *config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Set stores a JSON-marshalled value.
func (c *RedisCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get loads a value into dest. Returns redis.Nil error on miss.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete removes keys.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

// Close closes the connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Settings cache keys. Prompt templates change rarely; a short TTL keeps
// admin edits visible without hammering Mongo on every generation.
const (
	SettingCacheKeyPrefix = "setting:"
	SettingCacheTTL       = 5 * time.Minute
)

// SettingCacheKey builds the cache key for a settings document.
func SettingCacheKey(id string) string {
	return SettingCacheKeyPrefix + id
}
