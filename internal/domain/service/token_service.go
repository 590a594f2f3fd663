package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the signed credentials.
// Access credentials carry the account's email (and phone for sellers);
// refresh credentials carry only the subject.
type Claims struct {
	AccountID uuid.UUID
	Email     string
	Phone     string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the
// signed bearer credentials. Verification fails closed: any signature
// mismatch or expiry yields an error, never partial claims.
type TokenService interface {
	// GenerateAccessToken creates a short-lived access credential.
	// email and phone are embedded as claims; phone may be empty.
	GenerateAccessToken(accountID uuid.UUID, email, phone string) (string, error)

	// GenerateRefreshToken creates a longer-lived refresh credential
	// carrying only the account ID.
	GenerateRefreshToken(accountID uuid.UUID) (string, error)

	// ValidateAccessToken checks an access credential against the access secret.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh credential against the refresh secret.
	ValidateRefreshToken(tokenString string) (*Claims, error)
}
