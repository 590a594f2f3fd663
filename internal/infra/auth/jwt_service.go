// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/config"
	"bazaar/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh credentials are signed with separate secrets so a
// leaked refresh secret can never mint access credentials.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// jwtClaims is the wire shape of the signed claims. Access credentials
// carry the account's contact fields; refresh credentials carry only the
// registered claims.
type jwtClaims struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.SecretKey.AccessTTL,
		refreshTTL:    cfg.SecretKey.RefreshTTL,
	}, nil
}

// GenerateAccessToken creates a short-lived access credential carrying the
// account's email and, for sellers, phone.
func (s *jwtService) GenerateAccessToken(accountID uuid.UUID, email, phone string) (string, error) {
	return s.generateToken(accountID, email, phone, s.accessTTL, s.accessSecret)
}

// GenerateRefreshToken creates a longer-lived refresh credential carrying
// only the account ID.
func (s *jwtService) GenerateRefreshToken(accountID uuid.UUID) (string, error) {
	return s.generateToken(accountID, "", "", s.refreshTTL, s.refreshSecret)
}

// ValidateAccessToken checks an access credential against the access secret.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.accessSecret)
}

// ValidateRefreshToken checks a refresh credential against the refresh secret.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.refreshSecret)
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(accountID uuid.UUID, email, phone string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		Email: email,
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// validateToken verifies signature and expiry, failing closed on any
// mismatch. Expired or forged credentials never yield partial claims.
func (s *jwtService) validateToken(tokenString, secret string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	return &service.Claims{
		AccountID:        accountID,
		Email:            claims.Email,
		Phone:            claims.Phone,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
