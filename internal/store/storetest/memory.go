// Package storetest provides an in-memory store.Provider for handler tests.
package storetest

import (
	"context"
	"sync"

	"delivery_orders/internal/domain"
	"delivery_orders/internal/store"
)

// Memory enforces the same uniqueness and foreign-key rules as the SQL schema.
type Memory struct {
	mu          sync.Mutex
	users       []domain.User
	orders      []domain.Order
	nextUserID  uint
	nextOrderID uint

	// Err, when set, is returned by every operation.
	Err error
	// Sessions counts how many sessions were opened.
	Sessions int
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Session(context.Context) store.Gateway {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sessions++
	return m
}

// UserCount returns the number of stored users.
func (m *Memory) UserCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// OrderCount returns the number of stored orders.
func (m *Memory) OrderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *Memory) CreateUser(user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, u := range m.users {
		if u.Email == user.Email || u.APIToken == user.APIToken {
			return store.ErrConflict
		}
	}
	m.nextUserID++
	user.ID = m.nextUserID
	stored := *user
	stored.Orders = nil
	m.users = append(m.users, stored)
	return nil
}

func (m *Memory) FindUserByID(id uint) (*domain.User, error) {
	return m.findUser(func(u domain.User) bool { return u.ID == id })
}

func (m *Memory) FindUserByToken(token string) (*domain.User, error) {
	return m.findUser(func(u domain.User) bool { return u.APIToken == token })
}

func (m *Memory) findUser(match func(domain.User) bool) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Memory) CreateOrder(order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	owner := false
	for _, u := range m.users {
		if u.ID == order.UserID {
			owner = true
			break
		}
	}
	if !owner {
		return store.ErrForeignKey
	}
	for _, o := range m.orders {
		if o.OrderID == order.OrderID {
			return store.ErrConflict
		}
	}
	m.nextOrderID++
	order.ID = m.nextOrderID
	m.orders = append(m.orders, *order)
	return nil
}

func (m *Memory) FindOrderByOrderID(orderID int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, o := range m.orders {
		if o.OrderID == orderID {
			found := o
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Memory) FindOrdersByUserID(userID uint) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
