// Package middleware contains the HTTP middleware chain pieces.
package middleware

import (
	"net/http"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys under which the resolved principal is stored.
const (
	KeyUser   = "authenticatedUser"
	KeySeller = "authenticatedSeller"
)

// AuthMiddleware validates the access credential and resolves the
// principal before protected handlers run. The cookie takes precedence
// over the Authorization header.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	txManager repository.TransactionManager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, txManager repository.TransactionManager) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, txManager: txManager}
}

// AuthenticateUser gates user routes. The resolved user is attached to
// the echo context; a missing or invalid credential aborts the request
// through the error boundary.
func (m *AuthMiddleware) AuthenticateUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.verifyAccessToken(c)
		if err != nil {
			return err
		}

		var user *entity.User
		err = m.txManager.Execute(c.Request().Context(), func(repoFactory repository.RepositoryFactory) error {
			found, err := repoFactory.UserRepo().FindByID(c.Request().Context(), claims.AccountID)
			if err != nil {
				return err
			}
			user = found

			return nil
		})
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Deleted accounts present the same face as forged tokens.
				return domainerrors.ErrInvalidToken
			}

			return errors.Wrap(err, "failed to resolve user principal")
		}

		c.Set(KeyUser, user)

		return next(c)
	}
}

// AuthenticateSeller gates seller routes.
func (m *AuthMiddleware) AuthenticateSeller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.verifyAccessToken(c)
		if err != nil {
			return err
		}

		var seller *entity.Seller
		err = m.txManager.Execute(c.Request().Context(), func(repoFactory repository.RepositoryFactory) error {
			found, err := repoFactory.SellerRepo().FindByID(c.Request().Context(), claims.AccountID)
			if err != nil {
				return err
			}
			seller = found

			return nil
		})
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrInvalidToken
			}

			return errors.Wrap(err, "failed to resolve seller principal")
		}

		c.Set(KeySeller, seller)

		return next(c)
	}
}

// verifyAccessToken extracts and validates the access credential.
func (m *AuthMiddleware) verifyAccessToken(c echo.Context) (*service.Claims, error) {
	tokenString := ExtractAccessToken(c)
	if tokenString == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}

// ExtractAccessToken returns the access credential from the request.
// The accessToken cookie wins over an Authorization Bearer header.
func ExtractAccessToken(c echo.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		// Not a Bearer scheme.
		return ""
	}

	return strings.TrimSpace(tokenString)
}

// GetAuthenticatedUser returns the principal attached by AuthenticateUser.
func GetAuthenticatedUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(KeyUser).(*entity.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated user")
	}

	return user, nil
}

// GetAuthenticatedSeller returns the principal attached by AuthenticateSeller.
func GetAuthenticatedSeller(c echo.Context) (*entity.Seller, error) {
	seller, ok := c.Get(KeySeller).(*entity.Seller)
	if !ok || seller == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated seller")
	}

	return seller, nil
}
