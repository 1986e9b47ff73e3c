package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// deadMongoClient returns a client aimed at a closed port with short
// selection timeouts, so pings fail fast instead of hanging.
func deadMongoClient(t *testing.T) *mongo.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	uri := "mongodb://127.0.0.1:1/?connectTimeoutMS=200&serverSelectionTimeoutMS=200"
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})
	return client
}

func TestCheckHealthDownStore(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status := CheckHealth(ctx, deadMongoClient(t), nil)
	if status.Mongo {
		t.Error("down store reported healthy")
	}
	if status.Redis != nil {
		t.Error("redis probed with caching disabled")
	}
	if status.CheckedAt.IsZero() {
		t.Error("snapshot has no timestamp")
	}
}

func TestCheckHealthDownCache(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cache := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = cache.Close() })

	status := CheckHealth(ctx, deadMongoClient(t), cache)
	if status.Redis == nil {
		t.Fatal("redis status missing despite configured cache")
	}
	if *status.Redis {
		t.Error("down cache reported healthy")
	}
}

func TestHealthSnapshotRoundTrip(t *testing.T) {
	redisUp := true
	want := HealthStatus{
		Mongo:     true,
		Redis:     &redisUp,
		CheckedAt: time.Now(),
	}
	SetHealthStatus(want)

	got := GetHealthStatus()
	if got.Mongo != want.Mongo || got.Redis != want.Redis || !got.CheckedAt.Equal(want.CheckedAt) {
		t.Errorf("snapshot = %+v, want %+v", got, want)
	}
}
