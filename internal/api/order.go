package api

import (
	"delivery_orders/internal/domain"     // Importing domain models
	"delivery_orders/internal/middleware" // Request-scoped store session
	"delivery_orders/internal/store"      // Persistence gateway errors
	"delivery_orders/internal/utils"      // Cache helpers
	"errors"                              // Error inspection
	"net/http"                            // HTTP status codes
	"time"                                // Cache TTL

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateOrderHandler stores an order for an existing user
func CreateOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		order, ok := req.toDomain()
		if !ok {
			// Negative ids can never match a stored user
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		gw := middleware.Gateway(c)
		// The referenced user must exist before anything is written
		if _, err := gw.FindUserByID(order.UserID); errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		} else if err != nil {
			internalError(c, "Failed to create order", err, logrus.Fields{"user_id": order.UserID})
			return
		}
		if err := gw.CreateOrder(order); err != nil {
			switch {
			case errors.Is(err, store.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{"error": "Order ID already exists"})
			case errors.Is(err, store.ErrForeignKey):
				// User vanished between the check and the insert
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				internalError(c, "Failed to create order", err, logrus.Fields{
					"order_id": order.OrderID, // Public order ID
					"user_id":  order.UserID,  // Owner
				})
			}
			return
		}
		logrus.WithFields(logrus.Fields{
			"id":        order.ID,                        // Surrogate ID
			"order_id":  order.OrderID,                   // Public order ID
			"user_id":   order.UserID,                    // Owner
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Order created")
		c.JSON(http.StatusOK, newOrderResponse(order))
	}
}

// GetUserOrdersHandler lists a user's orders; an empty list is reported as not found.
// The list always comes from the store since it grows with every new order.
func GetUserOrdersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDParam(c) // Parse path parameter
		if !ok {
			return
		}
		var orders []domain.Order
		if userID >= 0 {
			var err error
			orders, err = middleware.Gateway(c).FindOrdersByUserID(uint(userID))
			if err != nil {
				internalError(c, "Failed to fetch orders", err, logrus.Fields{"user_id": userID})
				return
			}
		}
		// Unknown user and user without orders look the same to the caller
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No orders found for this user"})
			return
		}
		c.JSON(http.StatusOK, newOrderResponses(orders))
	}
}

// GetOrderHandler returns an order by its public order_id
func GetOrderHandler(cache utils.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := int64Param(c, "order_id") // Parse path parameter
		if !ok {
			return
		}
		ctx := c.Request.Context()
		cacheKey := utils.OrderCacheKey(orderID)
		var cached OrderResponse
		// Orders are immutable, a cached copy is always current
		if found, err := cache.Get(ctx, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		order, err := middleware.Gateway(c).FindOrderByOrderID(orderID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		} else if err != nil {
			internalError(c, "Failed to fetch order", err, logrus.Fields{"order_id": orderID})
			return
		}
		resp := newOrderResponse(order)
		if err := cache.Set(ctx, cacheKey, resp, ttl); err != nil {
			logrus.WithError(err).Warn("Failed to cache order")
		}
		c.JSON(http.StatusOK, resp)
	}
}
