package middleware

import (
	"context"                         // Context for cache operations
	"delivery_orders/internal/domain" // Importing domain models
	"delivery_orders/internal/store"  // Persistence gateway
	"delivery_orders/internal/utils"  // Cache helpers
	"errors"                          // Error inspection
	"net/http"                        // HTTP status codes
	"time"                            // Cache TTL

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// TokenHeader carries the bearer token; api_token is accepted as an alternate spelling
const (
	TokenHeader    = "api-token"
	altTokenHeader = "api_token"
)

var (
	ErrMissingCredential = errors.New("missing api token") // No token header or empty value
	ErrInvalidCredential = errors.New("invalid api token") // Token matches no user
)

// cachedIdentity is what the auth cache stores; the token itself is never written
type cachedIdentity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Authenticate resolves a credential to its user
func Authenticate(ctx context.Context, gw store.Gateway, cache utils.Cache, ttl time.Duration, credential string) (*domain.User, error) {
	if credential == "" {
		return nil, ErrMissingCredential
	}
	key := utils.TokenCacheKey(credential) // Hashed cache key
	var cached cachedIdentity
	if found, err := cache.Get(ctx, key, &cached); err == nil && found {
		return &domain.User{ID: cached.ID, Name: cached.Name, Email: cached.Email, APIToken: credential}, nil
	} else if err != nil {
		logrus.WithError(err).Warn("auth cache read failed") // Fall through to the store
	}
	user, err := gw.FindUserByToken(credential) // Exact match on api_token
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredential
	} else if err != nil {
		return nil, err
	}
	if err := cache.Set(ctx, key, cachedIdentity{ID: user.ID, Name: user.Name, Email: user.Email}, ttl); err != nil {
		logrus.WithError(err).Warn("auth cache write failed")
	}
	return user, nil
}

// APITokenAuth rejects requests whose token header does not resolve to a user
func APITokenAuth(cache utils.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := c.GetHeader(TokenHeader) // Get token header
		if credential == "" {
			credential = c.GetHeader(altTokenHeader) // Underscore spelling
		}
		user, err := Authenticate(c.Request.Context(), Gateway(c), cache, ttl, credential)
		switch {
		case errors.Is(err, ErrMissingCredential):
			// No token, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing API Token"})
			return
		case errors.Is(err, ErrInvalidCredential):
			// Unknown token, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Token"})
			return
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"path":  c.FullPath(), // Route being accessed
				"error": err.Error(),  // Error message
			}).Error("Token lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
			return
		}
		c.Set(userKey, user) // Store user in context
		c.Next()             // Proceed to the next handler
	}
}
