// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmailOrPhone retrieves a user matching either unique field.
	// An empty email or phone is ignored in the lookup.
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateRefreshToken persists only the refresh credential column,
	// leaving every other field untouched. nil clears the credential.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error

	// Delete removes a user by ID. Returns ErrUserNotFound if no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
