package main

import (
	"context"                         // context package is needed for Redis operations
	"delivery_orders/internal/api"    // Custom package for API handlers
	"delivery_orders/internal/config" // Custom package for configuration
	"delivery_orders/internal/db"     // Custom package for database connection
	"delivery_orders/internal/store"  // Custom package for persistence
	"delivery_orders/internal/utils"  // Custom package for cache helpers
	"time"                            // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	setupLogger(cfg) // Setup logger

	// Connect to the database
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis cache if configured
	var cache utils.Cache = utils.NoopCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = utils.NewRedisCache(redisClient)
	} else {
		logrus.Info("REDIS_ADDR not set, caching disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		Store:      store.NewGormStore(gdb),                   // Per-request sessions over the pool
		Cache:      cache,                                     // Read cache
		CacheTTL:   time.Duration(cfg.CacheTTL) * time.Second, // Cache TTL
		TokenBytes: cfg.TokenBytes,                            // Token entropy
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {             // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
