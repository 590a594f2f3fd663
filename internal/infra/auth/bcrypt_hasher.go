// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"bazaar/config"
	"bazaar/internal/domain/service"
)

const (
	defaultUserBcryptCost   = 8
	defaultSellerBcryptCost = 10
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewUserHasher builds the hasher for user passwords. Users hash at a
// lower cost than sellers; both costs can be tuned through config.
func NewUserHasher(cfg *config.Config) service.UserPasswordHasher {
	cost := defaultUserBcryptCost
	if cfg.Auth != nil && cfg.Auth.UserBcryptCost > 0 {
		cost = cfg.Auth.UserBcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewSellerHasher builds the hasher for seller passwords.
func NewSellerHasher(cfg *config.Config) service.SellerPasswordHasher {
	cost := defaultSellerBcryptCost
	if cfg.Auth != nil && cfg.Auth.SellerBcryptCost > 0 {
		cost = cfg.Auth.SellerBcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
