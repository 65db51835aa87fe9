package utils

import (
	"context"       // Context for Redis operations
	"encoding/hex"  // Hex encoding for hashed keys
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Integer keys
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"golang.org/x/crypto/blake2b"  // Hashing bearer tokens before they become keys
)

// Cache is a JSON value cache with per-key TTL
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)              // Found flag and decode error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error // Store value as JSON
	Delete(ctx context.Context, key string) error                            // Remove key
}

// RedisCache stores JSON values in Redis
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache wraps a Redis client
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// Set sets a value in Redis with a specified TTL
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return c.rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// Delete deletes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err() // Delete key from Redis
}

// NoopCache never stores anything; used when Redis is not configured
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, any) (bool, error)         { return false, nil }
func (NoopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (NoopCache) Delete(context.Context, string) error                  { return nil }

// TokenCacheKey keys an identity by a hash of the bearer token, never the token itself
func TokenCacheKey(token string) string {
	sum := blake2b.Sum256([]byte(token))              // 32-byte digest
	return "auth:token:" + hex.EncodeToString(sum[:]) // Hex-encoded key
}

// OrderCacheKey keys a single order by its public order_id
func OrderCacheKey(orderID int64) string {
	return "order:" + strconv.FormatInt(orderID, 10)
}
