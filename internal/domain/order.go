package domain

// Order Model
type Order struct {
	ID                   uint    `gorm:"primaryKey"`           // Surrogate primary key
	OrderID              int64   `gorm:"uniqueIndex;not null"` // Public business key
	UserID               uint    `gorm:"index;not null"`       // Foreign key to User
	DistanceKm           float64 `gorm:"not null"`             // Delivery distance
	Weather              string  `gorm:"not null"`             // Free-form weather label
	TrafficLevel         string  `gorm:"not null"`             // Free-form traffic label
	TimeOfDay            string  `gorm:"not null"`             // Free-form time-of-day label
	VehicleType          string  `gorm:"not null"`             // Free-form vehicle label
	PreparationTimeMin   int     `gorm:"not null"`             // Preparation time in minutes
	CourierExperienceYrs float64 `gorm:"not null"`             // Courier experience in years
	DeliveryTimeMin      int     `gorm:"not null"`             // Delivery time in minutes
}
