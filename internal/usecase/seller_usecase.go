package usecase

import (
	"context"
	"strings"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterSellerInput defines the data required to register a new seller.
type RegisterSellerInput struct {
	FullName       string `json:"fullname" form:"fullname"`
	Email          string `json:"email" form:"email"`
	Phone          string `json:"phone" form:"phone"`
	DisplayName    string `json:"displayName" form:"displayName"`
	GSTN           string `json:"gstn" form:"gstn"`
	Password       string `json:"password" form:"password"`
	PickupLocation string `json:"pickupLocation" form:"pickupLocation"`
	Pincode        string `json:"pincode" form:"pincode"`
}

// Validate applies the seller registration rules in a fixed order,
// stopping at the first violation.
func (in *RegisterSellerInput) Validate() error {
	if in.FullName == "" || in.Email == "" || in.Phone == "" || in.DisplayName == "" ||
		in.GSTN == "" || in.Password == "" || in.PickupLocation == "" || in.Pincode == "" {
		return domainerrors.ErrValidationFailed.WithMessage("All fields are required")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Fullname should not be empty")
	}
	if !validEmail(in.Email) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid email")
	}
	if !validPhone(in.Phone) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid phone number")
	}
	if strings.TrimSpace(in.DisplayName) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Display name should not be empty")
	}
	if len(strings.TrimSpace(in.GSTN)) != gstnLength {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid GSTN format")
	}
	if !validPassword(in.Password) {
		return domainerrors.ErrValidationFailed.WithMessage("Password should be at least 8 characters long")
	}
	if len(strings.TrimSpace(in.PickupLocation)) < minPickupLocationLength {
		return domainerrors.ErrValidationFailed.WithMessage("Pickup location should be at least 10 characters long")
	}
	if !validPincode(in.Pincode) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid pincode")
	}

	return nil
}

// LoginSellerInput defines the data required for a seller to log in.
// Sellers identify themselves by phone only.
type LoginSellerInput struct {
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
}

// Validate checks identifier and password formats.
func (in *LoginSellerInput) Validate() error {
	if in.Phone == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Phone is required")
	}
	if !validPhone(in.Phone) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid phone number")
	}
	if in.Password == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Password is required")
	}
	if !validPassword(in.Password) {
		return domainerrors.ErrValidationFailed.WithMessage("Password should be at least 8 characters long")
	}

	return nil
}

// UpdateSellerNameInput carries a partial name update.
type UpdateSellerNameInput struct {
	FullName    *string `json:"fullname" form:"fullname"`
	DisplayName *string `json:"displayName" form:"displayName"`
}

// Validate requires at least one field; present names need a minimum
// length of 5 characters after trimming.
func (in *UpdateSellerNameInput) Validate() error {
	if in.FullName == nil && in.DisplayName == nil {
		return domainerrors.ErrValidationFailed.WithMessage("At least one field should be updated")
	}
	if in.FullName != nil && len(strings.TrimSpace(*in.FullName)) < minNameLength {
		return domainerrors.ErrValidationFailed.WithMessage("Fullname should be at least 5 characters long")
	}
	if in.DisplayName != nil && len(strings.TrimSpace(*in.DisplayName)) < minNameLength {
		return domainerrors.ErrValidationFailed.WithMessage("Display name should be at least 5 characters long")
	}

	return nil
}

// UpdateSellerContactInput carries a partial phone/email update.
type UpdateSellerContactInput struct {
	Phone *string `json:"phone" form:"phone"`
	Email *string `json:"email" form:"email"`
}

// Validate requires at least one field and checks formats.
func (in *UpdateSellerContactInput) Validate() error {
	if in.Phone == nil && in.Email == nil {
		return domainerrors.ErrValidationFailed.WithMessage("At least one field should be updated")
	}
	if in.Phone != nil && !validPhone(*in.Phone) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid phone number")
	}
	if in.Email != nil && !validEmail(*in.Email) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid email")
	}

	return nil
}

// UpdateSellerPasswordInput carries a password change.
type UpdateSellerPasswordInput struct {
	Password string `json:"password" form:"password"`
}

// Validate checks the new password's format.
func (in *UpdateSellerPasswordInput) Validate() error {
	if in.Password == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Password is required")
	}
	if !validPassword(in.Password) {
		return domainerrors.ErrValidationFailed.WithMessage("Password should be at least 8 characters long")
	}

	return nil
}

// UpdateSellerLocationInput carries a partial pickup location / pincode update.
type UpdateSellerLocationInput struct {
	PickupLocation *string `json:"pickupLocation" form:"pickupLocation"`
	Pincode        *string `json:"pincode" form:"pincode"`
}

// Validate requires at least one field and checks formats.
func (in *UpdateSellerLocationInput) Validate() error {
	if in.PickupLocation == nil && in.Pincode == nil {
		return domainerrors.ErrValidationFailed.WithMessage("At least one field should be updated")
	}
	if in.PickupLocation != nil && len(strings.TrimSpace(*in.PickupLocation)) < minPickupLocationLength {
		return domainerrors.ErrValidationFailed.WithMessage("Pickup location should be at least 10 characters long")
	}
	if in.Pincode != nil && !validPincode(*in.Pincode) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid pincode")
	}

	return nil
}

// --- Output DTOs ---

// SellerView is the sanitized representation of a seller returned by the
// API. It never carries the password hash or the refresh credential.
type SellerView struct {
	ID             uuid.UUID `json:"_id"`
	FullName       string    `json:"fullname"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DisplayName    string    `json:"displayName"`
	GSTN           string    `json:"gstn"`
	PickupLocation string    `json:"pickupLocation"`
	Pincode        string    `json:"pincode"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewSellerView maps a domain seller to its sanitized API representation.
func NewSellerView(seller *entity.Seller) *SellerView {
	if seller == nil {
		return nil
	}

	return &SellerView{
		ID:             seller.ID,
		FullName:       seller.FullName,
		Email:          seller.Email,
		Phone:          seller.Phone,
		DisplayName:    seller.DisplayName,
		GSTN:           seller.GSTN,
		PickupLocation: seller.PickupLocation,
		Pincode:        seller.Pincode,
		CreatedAt:      seller.CreatedAt,
		UpdatedAt:      seller.UpdatedAt,
	}
}

// LoginSellerOutput returns the issued credentials. The seller login
// response body is intentionally empty, so no view is included.
type LoginSellerOutput struct {
	AccessToken  string
	RefreshToken string
}

// SellerUsecase defines the interface for seller account operations.
type SellerUsecase interface {
	Register(ctx context.Context, input *RegisterSellerInput) (*SellerView, error)
	Login(ctx context.Context, input *LoginSellerInput) (*LoginSellerOutput, error)
	Logout(ctx context.Context, sellerID uuid.UUID) error
	RefreshTokens(ctx context.Context, presented string) (*TokenPairOutput, error)
	UpdateName(ctx context.Context, sellerID uuid.UUID, input *UpdateSellerNameInput) (*SellerView, error)
	UpdateContact(ctx context.Context, sellerID uuid.UUID, input *UpdateSellerContactInput) (*SellerView, error)
	UpdatePassword(ctx context.Context, sellerID uuid.UUID, input *UpdateSellerPasswordInput) (*SellerView, error)
	UpdateLocation(ctx context.Context, sellerID uuid.UUID, input *UpdateSellerLocationInput) (*SellerView, error)
	Delete(ctx context.Context, sellerID uuid.UUID) (*SellerView, error)
}
