// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"arogya/config"

	"github.com/go-redis/redis/v8"
)

// ReceiptCacheClient is the dedicated client for the post-payment receipt store.
var ReceiptCacheClient *redis.Client

// InitReceiptCache initializes the Redis client for the receipt store
// (using the receipt DB from AppConfig).
func InitReceiptCache() {
	ReceiptCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReceiptDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ReceiptCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Receipt Cache): %v", err)
	}
}

// GetReceiptCacheClient returns the Redis client for the receipt store.
func GetReceiptCacheClient() *redis.Client {
	if ReceiptCacheClient == nil {
		InitReceiptCache()
	}
	return ReceiptCacheClient
}
