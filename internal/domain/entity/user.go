// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity of a buyer on the platform.
// PasswordHash and RefreshToken are internal fields; they must never appear
// in an API response, which is why the delivery layer maps this entity to a
// sanitized view before serializing.
type User struct {
	ID           uuid.UUID // The unique identifier for this user account.
	FirstName    string
	LastName     string
	Gender       Gender
	Phone        string  // Exactly 10 digits, globally unique across users.
	Email        string  // Lowercased and trimmed before persistence, globally unique.
	PasswordHash string  // bcrypt digest of the user's password.
	RefreshToken *string // The single active refresh credential, nil when logged out.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
