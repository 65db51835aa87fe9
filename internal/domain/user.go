package domain

import (
	"crypto/rand"  // Cryptographically secure random bytes
	"encoding/hex" // Hex encoding for tokens
)

// User Model
type User struct {
	ID       uint    `gorm:"primaryKey"`                                    // Primary key
	Name     string  `gorm:"index;not null"`                                // Display name, not unique
	Email    string  `gorm:"size:255;uniqueIndex;not null"`                 // Unique email
	APIToken string  `gorm:"size:255;uniqueIndex;not null"`                 // Opaque bearer token
	Orders   []Order `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // One-to-many, deleted with the user
}

// GenerateAPIToken assigns a fresh hex-encoded random token of n bytes to the user
func (u *User) GenerateAPIToken(n int) (string, error) {
	buf := make([]byte, n) // Random byte buffer
	if _, err := rand.Read(buf); err != nil {
		return "", err // Entropy source failed
	}
	u.APIToken = hex.EncodeToString(buf) // 2*n hex characters
	return u.APIToken, nil
}
