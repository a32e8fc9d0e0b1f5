// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"supermock/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitRedis initializes both Redis clients up front.
func InitRedis() {
	InitCache()
	InitAuthCache()
}

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching (using DB from AppConfig for auth cache).
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// slotListingVersionKey is the generation counter for cached slot listings.
// Cache keys embed the current generation, so bumping it invalidates every
// cached listing at once without enumerating filter combinations.
const slotListingVersionKey = "timeslots:listing:ver"

// SlotListingVersion returns the current listing cache generation.
func SlotListingVersion(ctx context.Context, client *redis.Client) string {
	if client == nil {
		return "0"
	}
	v, err := client.Get(ctx, slotListingVersionKey).Result()
	if err != nil {
		return "0"
	}
	return v
}

// BumpSlotListingVersion advances the listing cache generation. Called after
// every slot mutation so a refetch sees authoritative state.
func BumpSlotListingVersion(ctx context.Context, client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Incr(ctx, slotListingVersionKey).Err(); err != nil {
		GetLogger().Sugar().Warnf("cache: failed to bump slot listing version: %v", err)
	}
}
