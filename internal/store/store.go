package store

import (
	"context"                         // Request-scoped sessions
	"delivery_orders/internal/domain" // Importing domain models
	"errors"                          // Sentinel errors
)

var (
	ErrNotFound   = errors.New("record not found")              // No row matched the lookup
	ErrConflict   = errors.New("unique constraint violated")    // Duplicate email, token or order_id
	ErrForeignKey = errors.New("foreign key constraint failed") // Referenced user does not exist
)

// Gateway is the create/read surface over the users and orders tables
type Gateway interface {
	CreateUser(user *domain.User) error                      // Insert user, sets ID
	FindUserByID(id uint) (*domain.User, error)              // Lookup by surrogate id
	FindUserByToken(token string) (*domain.User, error)      // Lookup by api_token
	CreateOrder(order *domain.Order) error                   // Insert order, sets ID
	FindOrderByOrderID(orderID int64) (*domain.Order, error) // Lookup by public order_id
	FindOrdersByUserID(userID uint) ([]domain.Order, error)  // All orders of a user, insertion order
}

// Provider opens a Gateway bound to a single request
type Provider interface {
	Session(ctx context.Context) Gateway
}

