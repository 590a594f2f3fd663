package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller is the identity of a merchant on the platform.
// Email, Phone and GSTN are each globally unique across sellers.
type Seller struct {
	ID             uuid.UUID
	FullName       string
	Email          string // Trimmed before persistence, globally unique.
	Phone          string // Exactly 10 digits, globally unique.
	DisplayName    string
	GSTN           string // 15-character tax identifier, globally unique.
	PasswordHash   string
	PickupLocation string // Free text, minimum length 10.
	Pincode        string // Exactly 6 digits.
	RefreshToken   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
