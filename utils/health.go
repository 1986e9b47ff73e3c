package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"` // nil when caching is disabled
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// SetHealthStatus stores a snapshot. Exposed for the monitor and for
// tests.
func SetHealthStatus(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// CheckHealth probes the appointment store and, when configured, the
// slot cache, and returns the resulting snapshot.
func CheckHealth(ctx context.Context, mongoClient *mongo.Client, cacheClient *redis.Client) HealthStatus {
	status := HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		CheckedAt: time.Now(),
	}
	if cacheClient != nil {
		ok := cacheClient.Ping(ctx).Err() == nil
		status.Redis = &ok
	}
	return status
}

// StartHealthMonitor runs CheckHealth periodically and stores the
// snapshot for the health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client, cacheClient *redis.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		SetHealthStatus(CheckHealth(ctx, mongoClient, cacheClient))
	}

	go func() {
		probe()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
