package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL parses a redis:// URL and returns a client. A failed ping is
// logged but not fatal; the cache degrades to misses.
func NewRedisFromURL(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("Redis ping failed, continuing without a warm cache: %v", err)
	} else {
		log.Println("Successfully connected to Redis!")
	}
	return rdb, nil
}

// Close releases the client's connection pool.
func Close(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}
}
