package booking

import (
	"context"
	"time"

	"clinicbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SlotCache holds recently listed booked-slot sets. Misses and write
// failures are silent; the repository stays the source of truth.
type SlotCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Del(ctx context.Context, key string)
}

// redisSlotCache backs SlotCache with the shared redis client.
type redisSlotCache struct {
	client *redis.Client
}

// NewRedisSlotCache wraps a redis client as a SlotCache. A nil client
// yields a nil cache, which the service treats as cache-off.
func NewRedisSlotCache(client *redis.Client) SlotCache {
	if client == nil {
		return nil
	}
	return &redisSlotCache{client: client}
}

func (c *redisSlotCache) Get(ctx context.Context, key string) (string, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return data, true
}

func (c *redisSlotCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache booked slots", zap.String("key", key), zap.Error(err))
	}
}

func (c *redisSlotCache) Del(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache", zap.String("key", key), zap.Error(err))
	}
}
