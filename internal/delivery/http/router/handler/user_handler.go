// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid registration input")
	}

	view, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "User registered successfully")
}

// Login handles the user login request. Both credentials are set as
// cookies; the body carries only the sanitized user.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginUserInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	response.SetAuthCookies(c, output.AccessToken, output.RefreshToken,
		h.cfg.SecretKey.AccessTTL, h.cfg.SecretKey.RefreshTTL)

	// 201 is inherited from the original contract; a login is not a creation.
	return response.Success(c, http.StatusCreated, output.User, "User logged in successfully")
}

// Logout invalidates the stored refresh credential and clears the cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	response.ClearAuthCookies(c)

	return response.Success(c, http.StatusCreated, nil, "User logged out successfully")
}

// RegenerateTokens rotates the credential pair. The refresh credential is
// read from the cookie first, then from the request body. This route is
// deliberately outside the auth gate: an expired access credential is the
// very reason clients call it.
func (h *UserHandler) RegenerateTokens(c echo.Context) error {
	presented := extractRefreshToken(c)
	if presented == "" {
		return domainerrors.ErrUnauthorized.WithMessage("Refresh token is required")
	}

	output, err := h.uc.RefreshTokens(c.Request().Context(), presented)
	if err != nil {
		return errors.WithStack(err)
	}

	response.SetAuthCookies(c, output.AccessToken, output.RefreshToken,
		h.cfg.SecretKey.AccessTTL, h.cfg.SecretKey.RefreshTTL)

	return response.Success(c, http.StatusOK, nil, "Tokens regenerated successfully")
}

// Update applies a partial profile update to the authenticated user.
func (h *UserHandler) Update(c echo.Context) error {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid update input")
	}

	view, err := h.uc.Update(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "User updated successfully")
}

// DeleteProfile hard-deletes the authenticated user's account.
func (h *UserHandler) DeleteProfile(c echo.Context) error {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Delete(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	response.ClearAuthCookies(c)

	return response.Success(c, http.StatusOK, view, "User deleted successfully")
}

// CurrentUser returns the sanitized authenticated principal.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, usecase.NewUserView(user), "Current user fetched successfully")
}

// extractRefreshToken reads the refresh credential from the cookie, then
// from the request body.
func extractRefreshToken(c echo.Context) string {
	if cookie, err := c.Cookie(response.RefreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var input usecase.RefreshTokensInput
	if err := c.Bind(&input); err == nil {
		return input.RefreshToken
	}

	return ""
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
