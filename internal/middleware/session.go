package middleware

import (
	"delivery_orders/internal/domain" // Importing domain models
	"delivery_orders/internal/store"  // Persistence gateway

	"github.com/gin-gonic/gin" // Gin web framework
)

const (
	sessionKey = "storeSession" // Gin context key for the request's store session
	userKey    = "currentUser"  // Gin context key for the authenticated user
)

// StoreSession opens a store session bound to the request context for every request
func StoreSession(p store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, p.Session(c.Request.Context())) // Scoped to this request only
		c.Next()                                          // Proceed to the next handler
	}
}

// Gateway returns the request's store session; StoreSession must run first
func Gateway(c *gin.Context) store.Gateway {
	return c.MustGet(sessionKey).(store.Gateway)
}

// CurrentUser returns the user resolved by APITokenAuth
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(userKey) // Get user from context
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
