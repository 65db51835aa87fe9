package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

const (
	MinTokenBytes   = 32 // Smallest amount of token entropy accepted
	DefaultCacheTTL = 60 // Cache TTL in seconds when unset or not positive
)

// Config holds the application configuration
type Config struct {
	AppPort    string // Application port
	DBDriver   string // Database driver: mysql or postgres
	DBUser     string // Database user
	DBPassword string // Database password
	DBHost     string // Database host
	DBPort     string // Database port
	DBName     string // Database name
	DBSSLMode  string // Postgres sslmode
	RedisAddr  string // Redis server address, empty disables the cache
	RedisPass  string // Redis password
	RedisDB    int    // Redis database number
	CacheTTL   int    // Cache TTL in seconds
	TokenBytes int    // Random bytes per API token
	LogLevel   string // Logrus level name
	IsProd     bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	tokenBytes := intEnv("TOKEN_BYTES", MinTokenBytes)
	if tokenBytes < MinTokenBytes {
		tokenBytes = MinTokenBytes // Never issue weaker tokens
	}
	cacheTTL := intEnv("CACHE_TTL_SECONDS", DefaultCacheTTL)
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL // Redis treats 0 and -1 as no expiry
	}
	return &Config{
		AppPort:    strEnv("APP_PORT", "8000"),      // Application port
		DBDriver:   strEnv("DB_DRIVER", "mysql"),    // Database driver
		DBUser:     os.Getenv("DB_USER"),            // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),        // Database password
		DBHost:     strEnv("DB_HOST", "127.0.0.1"),  // Database host
		DBPort:     os.Getenv("DB_PORT"),            // Database port
		DBName:     os.Getenv("DB_NAME"),            // Database name
		DBSSLMode:  strEnv("DB_SSLMODE", "disable"), // Postgres sslmode
		RedisAddr:  os.Getenv("REDIS_ADDR"),         // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),         // Redis password
		RedisDB:    intEnv("REDIS_DB", 0),           // Redis database number
		CacheTTL:   cacheTTL,                        // Cache TTL
		TokenBytes: tokenBytes,                      // Token entropy
		LogLevel:   strEnv("LOG_LEVEL", "info"),     // Log level
		IsProd:     os.Getenv("IS_PROD") == "true",  // Is production environment
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, port, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
	}
	port := c.DBPort
	if port == "" {
		port = "3306"
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
}

// strEnv returns the variable or def when unset
func strEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// intEnv returns the variable parsed as int or def when unset or malformed
func intEnv(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
