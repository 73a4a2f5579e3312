package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest liveness snapshot of the booking service's
// backing stores: mongo for bookings and the catalog, the cache client, and
// the lock client that serializes slot admissions.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	Lock      bool      `json:"lock"`
	CheckedAt time.Time `json:"checked_at"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// probeHealth pings each backing store. A nil client counts as down.
func probeHealth(ctx context.Context, cache, lock *redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	if cache != nil {
		status.Cache = cache.Ping(ctx).Err() == nil
	}
	if lock != nil {
		status.Lock = lock.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	return status
}

// StartHealthMonitor probes the backing stores periodically and keeps the
// in-memory snapshot current for the /health endpoint.
func StartHealthMonitor(cache, lock *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := probeHealth(ctx, cache, lock, mongoClient)

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
