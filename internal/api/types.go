package api

import "delivery_orders/internal/domain" // Importing domain models

// CreateUserRequest represents a registration request.
// Both fields must be present and non-empty; an empty name or email is rejected with 400.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`  // Display name must be provided
	Email string `json:"email" binding:"required"` // Email must be provided
}

// CreateUserResponse is returned once, the only time the token is shown
type CreateUserResponse struct {
	ID       uint   `json:"id"`        // User ID
	Name     string `json:"name"`      // Display name
	Email    string `json:"email"`     // Email
	APIToken string `json:"api_token"` // Bearer token
}

// OrderRef is an order reduced to its public id
type OrderRef struct {
	OrderID int64 `json:"order_id"` // Public order ID
}

// UserResponse represents a user with the public ids of its orders
type UserResponse struct {
	ID     uint       `json:"id"`     // User ID
	Name   string     `json:"name"`   // Display name
	Email  string     `json:"email"`  // Email
	Orders []OrderRef `json:"orders"` // Owned orders
}

// CreateOrderRequest represents an order payload; pointers distinguish zero from absent
type CreateOrderRequest struct {
	OrderID              *int64   `json:"order_id" binding:"required"`
	UserID               *int64   `json:"user_id" binding:"required"`
	DistanceKm           *float64 `json:"distance_km" binding:"required"`
	Weather              *string  `json:"weather" binding:"required"`
	TrafficLevel         *string  `json:"traffic_level" binding:"required"`
	TimeOfDay            *string  `json:"time_of_day" binding:"required"`
	VehicleType          *string  `json:"vehicle_type" binding:"required"`
	PreparationTimeMin   *int     `json:"preparation_time_min" binding:"required"`
	CourierExperienceYrs *float64 `json:"courier_experience_yrs" binding:"required"`
	DeliveryTimeMin      *int     `json:"delivery_time_min" binding:"required"`
}

// OrderResponse represents a stored order
type OrderResponse struct {
	ID                   uint    `json:"id"`
	OrderID              int64   `json:"order_id"`
	UserID               uint    `json:"user_id"`
	DistanceKm           float64 `json:"distance_km"`
	Weather              string  `json:"weather"`
	TrafficLevel         string  `json:"traffic_level"`
	TimeOfDay            string  `json:"time_of_day"`
	VehicleType          string  `json:"vehicle_type"`
	PreparationTimeMin   int     `json:"preparation_time_min"`
	CourierExperienceYrs float64 `json:"courier_experience_yrs"`
	DeliveryTimeMin      int     `json:"delivery_time_min"`
}

// toDomain maps a validated request onto a storage row; false when user_id is negative
func (r *CreateOrderRequest) toDomain() (*domain.Order, bool) {
	if *r.UserID < 0 {
		return nil, false
	}
	return &domain.Order{
		OrderID:              *r.OrderID,
		UserID:               uint(*r.UserID),
		DistanceKm:           *r.DistanceKm,
		Weather:              *r.Weather,
		TrafficLevel:         *r.TrafficLevel,
		TimeOfDay:            *r.TimeOfDay,
		VehicleType:          *r.VehicleType,
		PreparationTimeMin:   *r.PreparationTimeMin,
		CourierExperienceYrs: *r.CourierExperienceYrs,
		DeliveryTimeMin:      *r.DeliveryTimeMin,
	}, true
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:                   o.ID,
		OrderID:              o.OrderID,
		UserID:               o.UserID,
		DistanceKm:           o.DistanceKm,
		Weather:              o.Weather,
		TrafficLevel:         o.TrafficLevel,
		TimeOfDay:            o.TimeOfDay,
		VehicleType:          o.VehicleType,
		PreparationTimeMin:   o.PreparationTimeMin,
		CourierExperienceYrs: o.CourierExperienceYrs,
		DeliveryTimeMin:      o.DeliveryTimeMin,
	}
}

func newOrderResponses(orders []domain.Order) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i := range orders {
		resp[i] = newOrderResponse(&orders[i])
	}
	return resp
}
