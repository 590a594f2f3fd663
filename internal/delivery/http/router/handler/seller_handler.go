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

// SellerHandler holds dependencies for seller-related handlers.
type SellerHandler struct {
	uc     usecase.SellerUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, cfg *config.Config, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Register handles the seller registration request.
func (h *SellerHandler) Register(c echo.Context) error {
	var input usecase.RegisterSellerInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid registration input")
	}

	view, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Seller registered successfully")
}

// Login handles the seller login request. The response body stays empty;
// the credentials travel only as cookies.
func (h *SellerHandler) Login(c echo.Context) error {
	var input usecase.LoginSellerInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	response.SetAuthCookies(c, output.AccessToken, output.RefreshToken,
		h.cfg.SecretKey.AccessTTL, h.cfg.SecretKey.RefreshTTL)

	return response.Success(c, http.StatusCreated, nil, "Seller logged in successfully")
}

// Logout invalidates the stored refresh credential and clears the cookies.
func (h *SellerHandler) Logout(c echo.Context) error {
	seller, err := middleware.GetAuthenticatedSeller(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), seller.ID); err != nil {
		return errors.WithStack(err)
	}

	response.ClearAuthCookies(c)

	return response.Success(c, http.StatusCreated, nil, "Seller logged out successfully")
}

// RegenerateTokens rotates the credential pair for an authenticated seller.
func (h *SellerHandler) RegenerateTokens(c echo.Context) error {
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

// UpdateName updates full name and/or display name.
func (h *SellerHandler) UpdateName(c echo.Context) error {
	seller, err := middleware.GetAuthenticatedSeller(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateSellerNameInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid update input")
	}

	view, err := h.uc.UpdateName(c.Request().Context(), seller.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Seller updated successfully")
}

// UpdateContact updates phone and/or email.
func (h *SellerHandler) UpdateContact(c echo.Context) error {
	seller, err := middleware.GetAuthenticatedSeller(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateSellerContactInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid update input")
	}

	view, err := h.uc.UpdateContact(c.Request().Context(), seller.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Seller updated successfully")
}

// UpdatePassword re-hashes and stores a new password.
func (h *SellerHandler) UpdatePassword(c echo.Context) error {
	seller, err := middleware.GetAuthenticatedSeller(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateSellerPasswordInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid update input")
	}

	view, err := h.uc.UpdatePassword(c.Request().Context(), seller.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Seller updated successfully")
}

// UpdateLocation updates pickup location and/or pincode.
func (h *SellerHandler) UpdateLocation(c echo.Context) error {
	seller, err := middleware.GetAuthenticatedSeller(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateSellerLocationInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid update input")
	}

	view, err := h.uc.UpdateLocation(c.Request().Context(), seller.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Seller updated successfully")
}

// DeleteProfile hard-deletes the authenticated seller's account.
func (h *SellerHandler) DeleteProfile(c echo.Context) error {
	seller, err := middleware.GetAuthenticatedSeller(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Delete(c.Request().Context(), seller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	response.ClearAuthCookies(c)

	return response.Success(c, http.StatusOK, view, "Seller deleted successfully")
}
