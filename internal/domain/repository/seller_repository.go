package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is a domain-specific error returned when a seller is not found.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the standard operations for seller persistence.
type SellerRepository interface {
	// FindByID retrieves a single seller by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByPhone retrieves a seller by their unique phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Seller, error)

	// FindByUniqueFields retrieves a seller matching any of the unique
	// fields (email OR phone OR gstn). Empty values are ignored.
	FindByUniqueFields(ctx context.Context, email, phone, gstn string) (*entity.Seller, error)

	// Create persists a new seller entity to the storage.
	Create(ctx context.Context, seller *entity.Seller) error

	// Update modifies an existing seller entity in the storage.
	Update(ctx context.Context, seller *entity.Seller) error

	// UpdateRefreshToken persists only the refresh credential column.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error

	// Delete removes a seller by ID. Returns ErrSellerNotFound if no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
