package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
	sellerRepo *mockRepo.MockSellerRepository
}

func createTestAuthMiddleware(t *testing.T) authFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(userRepo).Maybe()
	factory.On("SellerRepo").Return(sellerRepo).Maybe()

	tokenSvc := mockSvc.NewMockTokenService(t)

	return authFixtures{
		middleware: NewAuthMiddleware(tokenSvc, &mockRepo.PassthroughTransactionManager{Factory: factory}),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
		sellerRepo: sellerRepo,
	}
}

func newEchoContext(mutate func(req *http.Request)) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("cookie wins over bearer header", func(t *testing.T) {
		c := newEchoContext(func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "accessToken", Value: "cookie-token"})
			req.Header.Set("Authorization", "Bearer header-token")
		})

		assert.Equal(t, "cookie-token", ExtractAccessToken(c))
	})

	t.Run("bearer header alone", func(t *testing.T) {
		c := newEchoContext(func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer header-token")
		})

		assert.Equal(t, "header-token", ExtractAccessToken(c))
	})

	t.Run("non bearer scheme ignored", func(t *testing.T) {
		c := newEchoContext(func(req *http.Request) {
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})

		assert.Empty(t, ExtractAccessToken(c))
	})

	t.Run("empty cookie falls back to header", func(t *testing.T) {
		c := newEchoContext(func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "accessToken", Value: ""})
			req.Header.Set("Authorization", "Bearer header-token")
		})

		assert.Equal(t, "header-token", ExtractAccessToken(c))
	})

	t.Run("no credential", func(t *testing.T) {
		assert.Empty(t, ExtractAccessToken(newEchoContext(nil)))
	})
}

func TestAuthMiddleware_AuthenticateUser_MissingToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	handler := fx.middleware.AuthenticateUser(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	err := handler(newEchoContext(nil))

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_AuthenticateUser_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("ValidateAccessToken", "forged").
		Return(nil, domainerrors.ErrInvalidToken).Once()

	handler := fx.middleware.AuthenticateUser(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	err := handler(newEchoContext(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "forged"})
	}))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_AuthenticateUser_DeletedAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	userID := uuid.New()

	fx.tokenSvc.On("ValidateAccessToken", "stale").
		Return(&service.Claims{AccountID: userID}, nil).Once()
	fx.userRepo.On("FindByID", mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound).Once()

	handler := fx.middleware.AuthenticateUser(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	err := handler(newEchoContext(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "stale"})
	}))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_AuthenticateUser_AttachesPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: uuid.New(), Email: "ramesh@example.com"}

	fx.tokenSvc.On("ValidateAccessToken", "valid").
		Return(&service.Claims{AccountID: user.ID}, nil).Once()
	fx.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

	var nextRan bool
	handler := fx.middleware.AuthenticateUser(func(c echo.Context) error {
		nextRan = true

		principal, err := GetAuthenticatedUser(c)
		require.NoError(t, err)
		assert.Equal(t, user.ID, principal.ID)

		return nil
	})

	err := handler(newEchoContext(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "valid"})
	}))

	require.NoError(t, err)
	assert.True(t, nextRan)
}

func TestAuthMiddleware_AuthenticateSeller_AttachesPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	seller := &entity.Seller{ID: uuid.New(), Phone: "9876543210"}

	fx.tokenSvc.On("ValidateAccessToken", "valid").
		Return(&service.Claims{AccountID: seller.ID}, nil).Once()
	fx.sellerRepo.On("FindByID", mock.Anything, seller.ID).Return(seller, nil).Once()

	handler := fx.middleware.AuthenticateSeller(func(c echo.Context) error {
		principal, err := GetAuthenticatedSeller(c)
		require.NoError(t, err)
		assert.Equal(t, seller.ID, principal.ID)

		return nil
	})

	err := handler(newEchoContext(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer valid")
	}))

	require.NoError(t, err)
}

func TestGetAuthenticatedUser_MissingPrincipal(t *testing.T) {
	_, err := GetAuthenticatedUser(newEchoContext(nil))

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
