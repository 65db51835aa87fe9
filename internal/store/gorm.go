package store

import (
	"context"                         // Request-scoped sessions
	"delivery_orders/internal/domain" // Importing domain models
	"errors"                          // Error inspection
	"fmt"                             // Error wrapping

	"gorm.io/gorm" // GORM ORM library
)

// GormStore is a Provider backed by a GORM connection pool
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps db; db should be opened with TranslateError enabled
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Session returns a Gateway whose queries run on a fresh session tied to ctx
func (s *GormStore) Session(ctx context.Context) Gateway {
	return &gormSession{db: s.db.Session(&gorm.Session{NewDB: true, Context: ctx})}
}

type gormSession struct {
	db *gorm.DB
}

func (s *gormSession) CreateUser(user *domain.User) error {
	if err := s.db.Omit("Orders").Create(user).Error; err != nil {
		return translate("create user", err)
	}
	return nil
}

func (s *gormSession) FindUserByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate("find user", err)
	}
	return &user, nil
}

func (s *gormSession) FindUserByToken(token string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("api_token = ?", token).First(&user).Error; err != nil {
		return nil, translate("find user by token", err)
	}
	return &user, nil
}

func (s *gormSession) CreateOrder(order *domain.Order) error {
	if err := s.db.Create(order).Error; err != nil {
		return translate("create order", err)
	}
	return nil
}

func (s *gormSession) FindOrderByOrderID(orderID int64) (*domain.Order, error) {
	var order domain.Order
	if err := s.db.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, translate("find order", err)
	}
	return &order, nil
}

func (s *gormSession) FindOrdersByUserID(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&orders).Error; err != nil {
		return nil, translate("find orders", err)
	}
	return orders, nil
}

// translate maps GORM errors onto the package sentinels
func translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrForeignKey)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
