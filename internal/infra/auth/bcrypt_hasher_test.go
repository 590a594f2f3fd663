package auth

import (
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewUserHasher(&config.Config{})

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_DefaultCosts(t *testing.T) {
	userHasher := NewUserHasher(&config.Config{})
	sellerHasher := NewSellerHasher(&config.Config{})

	userHash, err := userHasher.Hash("password123")
	assert.NoError(t, err)
	sellerHash, err := sellerHasher.Hash("password123")
	assert.NoError(t, err)

	userCost, err := bcrypt.Cost([]byte(userHash))
	assert.NoError(t, err)
	assert.Equal(t, defaultUserBcryptCost, userCost)

	sellerCost, err := bcrypt.Cost([]byte(sellerHash))
	assert.NoError(t, err)
	assert.Equal(t, defaultSellerBcryptCost, sellerCost)
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{UserBcryptCost: bcrypt.MinCost}}
	hasher := NewUserHasher(cfg)

	hash, err := hasher.Hash("password123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_CheckWithMalformedHash(t *testing.T) {
	hasher := NewSellerHasher(&config.Config{})

	assert.False(t, hasher.Check("password123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("password123", ""))
}
