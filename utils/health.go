package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest dependency snapshot: the booking database plus
// every redis client (listing cache, auth cache) by name.
type HealthStatus struct {
	Database  bool            `json:"database"`
	Caches    map[string]bool `json:"caches"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the database and the named redis clients once a
// minute and stores the snapshot for the health endpoint. The first check
// runs immediately so the endpoint never serves an empty snapshot.
func StartHealthMonitor(caches map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ctx := context.Background()
		checkHealth(ctx, caches, mongoClient)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			checkHealth(ctx, caches, mongoClient)
		}
	}()
}

func checkHealth(ctx context.Context, caches map[string]*redis.Client, mongoClient *mongo.Client) {
	cacheHealth := make(map[string]bool, len(caches))
	for name, client := range caches {
		cacheHealth[name] = client.Ping(ctx).Err() == nil
	}

	healthMu.Lock()
	currentHealth = HealthStatus{
		Database:  mongoClient.Ping(ctx, nil) == nil,
		Caches:    cacheHealth,
		CheckedAt: time.Now(),
	}
	healthMu.Unlock()
}
