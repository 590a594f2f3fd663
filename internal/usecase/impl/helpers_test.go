package impl

import (
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(userRepo).Maybe()

	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserAccountService(
		&mockRepo.PassthroughTransactionManager{Factory: factory},
		hasher,
		tokenService,
		newDiscardLogger(),
	)

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	service      usecase.SellerUsecase
	sellerRepo   *mockRepo.MockSellerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("SellerRepo").Return(sellerRepo).Maybe()

	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewSellerAccountService(
		&mockRepo.PassthroughTransactionManager{Factory: factory},
		hasher,
		tokenService,
		newDiscardLogger(),
	)

	return sellerServiceFixtures{
		service:      service,
		sellerRepo:   sellerRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func createTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		FirstName:    "Ramesh",
		LastName:     "Kumar",
		Gender:       entity.GenderMale,
		Phone:        "9876543210",
		Email:        "ramesh@example.com",
		PasswordHash: "hashed_password",
	}
}

func createTestSeller() *entity.Seller {
	return &entity.Seller{
		ID:             uuid.New(),
		FullName:       "Sharma Traders",
		Email:          "shop@example.com",
		Phone:          "9876543210",
		DisplayName:    "Sharma's",
		GSTN:           "22AAAAA0000A1Z5",
		PasswordHash:   "hashed_password",
		PickupLocation: "12 Market Road, Pune",
		Pincode:        "411001",
	}
}

func strPtr(s string) *string {
	return &s
}

func claimsFor(accountID uuid.UUID) *service.Claims {
	return &service.Claims{AccountID: accountID}
}

func validRegisterInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		FirstName: "Ramesh",
		LastName:  "Kumar",
		Gender:    "male",
		Phone:     "9876543210",
		Email:     "ramesh@example.com",
		Password:  "password123",
	}
}

func validLoginInput() *usecase.LoginUserInput {
	return &usecase.LoginUserInput{
		Email:    "ramesh@example.com",
		Password: "password123",
	}
}

var (
	updateInputWithEmail     = usecase.UpdateUserInput{Email: strPtr("taken@example.com")}
	updateInputWithFirstName = usecase.UpdateUserInput{FirstName: strPtr("Suresh")}
)
