package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserAccountService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := validRegisterInput()
	newID := uuid.New()

	fx.hasher.On("Hash", "password123").Return("hashed_password", nil).Once()
	fx.userRepo.On("FindByEmailOrPhone", ctx, "ramesh@example.com", "9876543210").
		Return(nil, repository.ErrUserNotFound).Once()
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Equal(t, "ramesh@example.com", user.Email)
			user.ID = newID
		}).
		Return(nil).Once()
	fx.userRepo.On("FindByID", ctx, newID).
		Return(&entity.User{
			ID:        newID,
			FirstName: "Ramesh",
			LastName:  "Kumar",
			Gender:    entity.GenderMale,
			Phone:     "9876543210",
			Email:     "ramesh@example.com",
		}, nil).Once()

	view, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, newID, view.ID)
	assert.Equal(t, "ramesh@example.com", view.Email)
}

func TestUserAccountService_Register_NormalizesEmailCase(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := validRegisterInput()
	input.Email = "  RAMESH@Example.COM "
	newID := uuid.New()

	fx.hasher.On("Hash", "password123").Return("hashed_password", nil).Once()
	fx.userRepo.On("FindByEmailOrPhone", ctx, "ramesh@example.com", "9876543210").
		Return(nil, repository.ErrUserNotFound).Once()
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "ramesh@example.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = newID
	}).Return(nil).Once()
	fx.userRepo.On("FindByID", ctx, newID).
		Return(&entity.User{ID: newID, Email: "ramesh@example.com"}, nil).Once()

	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
}

func TestUserAccountService_Register_Conflict(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "password123").Return("hashed_password", nil).Once()
	fx.userRepo.On("FindByEmailOrPhone", ctx, "ramesh@example.com", "9876543210").
		Return(createTestUser(), nil).Once()

	view, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.Nil(t, view)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Email or phone already exists! Please go for login", appErr.Message())
}

func TestUserAccountService_Register_ValidationShortCircuits(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.Password = ""

	// No repo or hasher expectations: validation must abort first.
	_, err := fx.service.Register(context.Background(), input)
	require.Error(t, err)
}

func TestUserAccountService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := createTestUser()

	fx.userRepo.On("FindByEmailOrPhone", ctx, "ramesh@example.com", "").
		Return(user, nil).Once()
	fx.hasher.On("Check", "password123", "hashed_password").Return(true).Once()
	fx.tokenService.On("GenerateAccessToken", user.ID, user.Email, "").
		Return("new-access", nil).Once()
	fx.tokenService.On("GenerateRefreshToken", user.ID).
		Return("new-refresh", nil).Once()
	fx.userRepo.On("UpdateRefreshToken", ctx, user.ID, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "new-refresh"
	})).Return(nil).Once()

	output, err := fx.service.Login(ctx, validLoginInput())

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	require.NotNil(t, output.User)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserAccountService_Login_WrongPasswordLeavesRefreshUntouched(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := createTestUser()

	fx.userRepo.On("FindByEmailOrPhone", ctx, "ramesh@example.com", "").
		Return(user, nil).Once()
	fx.hasher.On("Check", "password123", "hashed_password").Return(false).Once()
	// No UpdateRefreshToken expectation: the stored credential must not change.

	output, err := fx.service.Login(ctx, validLoginInput())

	require.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid password", appErr.Message())
}

func TestUserAccountService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmailOrPhone", ctx, "ramesh@example.com", "").
		Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.Login(ctx, validLoginInput())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid email or phone", appErr.Message())
}

func TestUserAccountService_RefreshTokens_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := createTestUser()
	user.RefreshToken = strPtr("current-refresh")

	fx.tokenService.On("ValidateRefreshToken", "current-refresh").
		Return(claimsFor(user.ID), nil).Once()
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()
	fx.tokenService.On("GenerateAccessToken", user.ID, user.Email, "").
		Return("rotated-access", nil).Once()
	fx.tokenService.On("GenerateRefreshToken", user.ID).
		Return("rotated-refresh", nil).Once()
	fx.userRepo.On("UpdateRefreshToken", ctx, user.ID, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "rotated-refresh"
	})).Return(nil).Once()

	output, err := fx.service.RefreshTokens(ctx, "current-refresh")

	require.NoError(t, err)
	assert.Equal(t, "rotated-access", output.AccessToken)
	assert.Equal(t, "rotated-refresh", output.RefreshToken)
}

func TestUserAccountService_RefreshTokens_ReplayRejected(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := createTestUser()
	user.RefreshToken = strPtr("current-refresh")

	// A stale-but-well-signed credential passes codec validation yet no
	// longer matches the stored value.
	fx.tokenService.On("ValidateRefreshToken", "stale-refresh").
		Return(claimsFor(user.ID), nil).Once()
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()

	output, err := fx.service.RefreshTokens(ctx, "stale-refresh")

	require.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestUserAccountService_RefreshTokens_LoggedOutRejected(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := createTestUser()
	user.RefreshToken = nil // logged out

	fx.tokenService.On("ValidateRefreshToken", "old-refresh").
		Return(claimsFor(user.ID), nil).Once()
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()

	_, err := fx.service.RefreshTokens(ctx, "old-refresh")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestUserAccountService_Logout_ClearsRefreshToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("UpdateRefreshToken", ctx, userID, (*string)(nil)).Return(nil).Twice()

	// Logging out twice is fine; the second call clears an already
	// cleared credential.
	require.NoError(t, fx.service.Logout(ctx, userID))
	require.NoError(t, fx.service.Logout(ctx, userID))
}

func TestUserAccountService_Update_ConflictOnTakenEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := createTestUser()
	other := createTestUser()
	other.ID = uuid.New()

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()
	fx.userRepo.On("FindByEmailOrPhone", ctx, "taken@example.com", user.Phone).
		Return(other, nil).Once()

	view, err := fx.service.Update(ctx, user.ID, &updateInputWithEmail)

	require.Error(t, err)
	assert.Nil(t, view)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Email or phone already exists! Please go for login", appErr.Message())
}

func TestUserAccountService_Update_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := createTestUser()

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()
	fx.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.FirstName == "Suresh"
	})).Return(nil).Once()

	view, err := fx.service.Update(ctx, user.ID, &updateInputWithFirstName)

	require.NoError(t, err)
	assert.Equal(t, "Suresh", view.FirstName)
}

func TestUserAccountService_Delete_ReturnsDeletedView(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := createTestUser()

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()
	fx.userRepo.On("Delete", ctx, user.ID).Return(nil).Once()

	view, err := fx.service.Delete(ctx, user.ID)

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, user.ID, view.ID)
}

func TestUserAccountService_Delete_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound).Once()

	view, err := fx.service.Delete(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
