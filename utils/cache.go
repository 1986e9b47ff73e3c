package utils

import (
	"context"
	"log"
	"time"

	"clinicbook/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the redis client backing the booked-slots cache. It
// stays nil when no REDIS_ADDR is configured; callers treat a nil
// client as cache-off.
var CacheClient *redis.Client

// InitCache connects the slot cache client. Redis is optional here, so
// an unreachable server downgrades to no caching rather than aborting
// startup.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("No REDIS_ADDR configured, slot caching disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, slot caching disabled: %v", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the slot cache client, or nil when caching is
// disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
