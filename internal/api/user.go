package api

import (
	"delivery_orders/internal/domain"     // Importing domain models
	"delivery_orders/internal/middleware" // Request-scoped store session
	"delivery_orders/internal/store"      // Persistence gateway errors
	"errors"                              // Error inspection
	"net/http"                            // HTTP status codes
	"time"                                // Log timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateUserHandler registers a user and issues its API token
func CreateUserHandler(tokenBytes int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user := domain.User{Name: req.Name, Email: req.Email}
		// Token is assigned before the row is written
		if _, err := user.GenerateAPIToken(tokenBytes); err != nil {
			logrus.WithError(err).Error("Failed to generate API token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		gw := middleware.Gateway(c) // Request-scoped store session
		if err := gw.CreateUser(&user); err != nil {
			// Duplicate email or token
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Requested email
				"error": err.Error(), // Error message
			}).Error("Failed to create user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // New user ID
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User created")
		c.JSON(http.StatusOK, CreateUserResponse{
			ID:       user.ID,       // Store-assigned ID
			Name:     user.Name,     // Display name
			Email:    user.Email,    // Email
			APIToken: user.APIToken, // Issued token
		})
	}
}

// GetUserHandler returns a user and the public ids of its orders
func GetUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDParam(c) // Parse path parameter
		if !ok {
			return
		}
		if userID < 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		gw := middleware.Gateway(c)
		user, err := gw.FindUserByID(uint(userID))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		} else if err != nil {
			internalError(c, "Failed to fetch user", err, logrus.Fields{"user_id": userID})
			return
		}
		// Orders are fetched explicitly, not through the relation
		orders, err := gw.FindOrdersByUserID(user.ID)
		if err != nil {
			internalError(c, "Failed to fetch user", err, logrus.Fields{"user_id": userID})
			return
		}
		refs := make([]OrderRef, len(orders)) // Empty array, never null
		for i, o := range orders {
			refs[i] = OrderRef{OrderID: o.OrderID}
		}
		c.JSON(http.StatusOK, UserResponse{
			ID:     user.ID,    // User ID
			Name:   user.Name,  // Display name
			Email:  user.Email, // Email
			Orders: refs,       // Order ids
		})
	}
}
