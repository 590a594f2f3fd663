// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
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

// RegisterUserInput defines the data required to register a new user.
// Bindable from JSON or form bodies.
type RegisterUserInput struct {
	FirstName string `json:"firstname" form:"firstname"`
	LastName  string `json:"lastname" form:"lastname"`
	Gender    string `json:"gender" form:"gender"`
	Phone     string `json:"phone" form:"phone"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
}

// Validate applies the registration rules in a fixed order and stops at
// the first violation. No field is mutated; normalization happens in the
// service once validation has passed.
func (in *RegisterUserInput) Validate() error {
	if in.FirstName == "" || in.LastName == "" || in.Gender == "" || in.Phone == "" || in.Email == "" || in.Password == "" {
		return domainerrors.ErrValidationFailed.WithMessage("All fields are required")
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Firstname should not be empty")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Lastname should not be empty")
	}
	if !entity.Gender(strings.ToLower(strings.TrimSpace(in.Gender))).IsValid() {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid gender")
	}
	if !validPhone(in.Phone) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid phone number")
	}
	if !validEmail(in.Email) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid email")
	}
	if !validPassword(in.Password) {
		return domainerrors.ErrValidationFailed.WithMessage("Password should be at least 8 characters long")
	}

	return nil
}

// LoginUserInput defines the data required for a user to log in.
// Users may identify themselves by phone or email.
type LoginUserInput struct {
	Phone    string `json:"phone" form:"phone"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Validate checks identifier and password formats without touching storage.
func (in *LoginUserInput) Validate() error {
	if in.Phone == "" && in.Email == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Phone or email is required")
	}
	if in.Phone != "" && !validPhone(in.Phone) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid phone number")
	}
	if in.Email != "" && !validEmail(in.Email) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid email")
	}
	if in.Password == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Password is required")
	}
	if !validPassword(in.Password) {
		return domainerrors.ErrValidationFailed.WithMessage("Password should be at least 8 characters long")
	}

	return nil
}

// UpdateUserInput carries a partial profile update. Absent fields are nil
// and keep their previous values.
type UpdateUserInput struct {
	FirstName *string `json:"firstname" form:"firstname"`
	LastName  *string `json:"lastname" form:"lastname"`
	Gender    *string `json:"gender" form:"gender"`
	Phone     *string `json:"phone" form:"phone"`
	Email     *string `json:"email" form:"email"`
}

// Validate requires at least one updatable field and checks each present
// field independently, in declaration order.
func (in *UpdateUserInput) Validate() error {
	if in.FirstName == nil && in.LastName == nil && in.Gender == nil && in.Phone == nil && in.Email == nil {
		return domainerrors.ErrValidationFailed.WithMessage("At least one field should be updated")
	}
	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Firstname should not be empty")
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Lastname should not be empty")
	}
	if in.Gender != nil && !entity.Gender(strings.ToLower(strings.TrimSpace(*in.Gender))).IsValid() {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid gender")
	}
	if in.Phone != nil && !validPhone(*in.Phone) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid phone number")
	}
	if in.Email != nil && !validEmail(*in.Email) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid email")
	}

	return nil
}

// RefreshTokensInput carries the refresh credential when it is presented
// in the request body instead of the cookie.
type RefreshTokensInput struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

// --- Output DTOs ---

// UserView is the sanitized representation of a user returned by the API.
// It never carries the password hash or the refresh credential.
type UserView struct {
	ID        uuid.UUID `json:"_id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserView maps a domain user to its sanitized API representation.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Gender:    user.Gender.String(),
		Phone:     user.Phone,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// TokenPairOutput returns a freshly issued access/refresh credential pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// LoginUserOutput returns the issued credentials and the sanitized user.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *UserView
}

// UserUsecase defines the interface for user account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*UserView, error)
	Login(ctx context.Context, input *LoginUserInput) (*LoginUserOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	RefreshTokens(ctx context.Context, presented string) (*TokenPairOutput, error)
	Update(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) (*UserView, error)
}
