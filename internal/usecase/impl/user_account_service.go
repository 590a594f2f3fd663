package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userAccountService implements the UserUsecase interface.
type userAccountService struct {
	txManager repository.TransactionManager
	hasher    service.UserPasswordHasher
	logger    *slog.Logger
	flow      *credentialFlow[entity.User]
}

// NewUserAccountService is the constructor for userAccountService.
func NewUserAccountService(
	txManager repository.TransactionManager,
	hasher service.UserPasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userAccountService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
		flow: &credentialFlow[entity.User]{
			tokens:        tokenSvc,
			id:            func(u *entity.User) uuid.UUID { return u.ID },
			email:         func(u *entity.User) string { return u.Email },
			phone:         func(u *entity.User) string { return "" }, // user access tokens carry no phone claim
			storedRefresh: func(u *entity.User) *string { return u.RefreshToken },
			find: func(ctx context.Context, f repository.RepositoryFactory, id uuid.UUID) (*entity.User, error) {
				return f.UserRepo().FindByID(ctx, id)
			},
			saveRefresh: func(ctx context.Context, f repository.RepositoryFactory, id uuid.UUID, token *string) error {
				return f.UserRepo().UpdateRefreshToken(ctx, id, token)
			},
			notFound: repository.ErrUserNotFound,
		},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userAccountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account. Uniqueness is checked up front for
// a friendly message; the database unique indexes remain the authority if
// two registrations race.
func (srv *userAccountService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)

	passwordHash, err := srv.hasher.Hash(strings.TrimSpace(input.Password))
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt hash failed")
	}

	var view *usecase.UserView
	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		userRepo := f.UserRepo()

		if _, err := userRepo.FindByEmailOrPhone(ctx, email, phone); err == nil {
			return domainerrors.ErrAccountAlreadyExists.WithMessage("Email or phone already exists! Please go for login")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check user uniqueness")
		}

		user := &entity.User{
			FirstName:    strings.TrimSpace(input.FirstName),
			LastName:     strings.TrimSpace(input.LastName),
			Gender:       entity.Gender(strings.ToLower(strings.TrimSpace(input.Gender))),
			Phone:        phone,
			Email:        email,
			PasswordHash: passwordHash,
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		// Re-fetch by id so the response reflects exactly what was stored.
		created, err := userRepo.FindByID(ctx, user.ID)
		if err != nil {
			return domainerrors.ErrInternalError.WithMessage("Something went wrong while creating user")
		}
		view = usecase.NewUserView(created)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User registration failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User registered", slog.Any("user_id", view.ID))

	return view, nil
}

// Login verifies credentials and issues a fresh token pair. The stored
// refresh credential is only touched after the password check passes.
func (srv *userAccountService) Login(ctx context.Context, input *usecase.LoginUserInput) (*usecase.LoginUserOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)

	var output *usecase.LoginUserOutput
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		user, err := f.UserRepo().FindByEmailOrPhone(ctx, email, phone)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WithMessage("Invalid email or phone")
			}

			return errors.Wrap(err, "failed to look up user")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WithMessage("Invalid password")
		}

		pair, err := srv.flow.issueAndPersist(ctx, f, user)
		if err != nil {
			return err
		}

		output = &usecase.LoginUserOutput{
			AccessToken:  pair.access,
			RefreshToken: pair.refresh,
			User:         usecase.NewUserView(user),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User login failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User logged in", slog.Any("user_id", output.User.ID))

	return output, nil
}

// Logout clears the stored refresh credential.
func (srv *userAccountService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.flow.dropRefresh(ctx, srv.txManager, userID); err != nil {
		srv.log(ctx).Warn("User logout failed", slog.Any("error", err), slog.Any("user_id", userID))

		return err
	}
	srv.log(ctx).Info("User logged out", slog.Any("user_id", userID))

	return nil
}

// RefreshTokens exchanges a valid refresh credential for a new pair.
func (srv *userAccountService) RefreshTokens(ctx context.Context, presented string) (*usecase.TokenPairOutput, error) {
	pair, err := srv.flow.rotate(ctx, srv.txManager, presented)
	if err != nil {
		srv.log(ctx).Warn("User token refresh rejected", slog.Any("error", err))

		return nil, err
	}

	return &usecase.TokenPairOutput{AccessToken: pair.access, RefreshToken: pair.refresh}, nil
}

// Update applies a partial profile update. Phone and email changes re-run
// the uniqueness check before anything is written.
func (srv *userAccountService) Update(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*usecase.UserView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var view *usecase.UserView
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		userRepo := f.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to load user")
		}

		newEmail := user.Email
		newPhone := user.Phone
		if input.Email != nil {
			newEmail = strings.ToLower(strings.TrimSpace(*input.Email))
		}
		if input.Phone != nil {
			newPhone = strings.TrimSpace(*input.Phone)
		}

		if newEmail != user.Email || newPhone != user.Phone {
			existing, err := userRepo.FindByEmailOrPhone(ctx, newEmail, newPhone)
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check user uniqueness")
			}
			if err == nil && existing.ID != userID {
				return domainerrors.ErrAccountAlreadyExists.WithMessage("Email or phone already exists! Please go for login")
			}
		}

		if input.FirstName != nil {
			user.FirstName = strings.TrimSpace(*input.FirstName)
		}
		if input.LastName != nil {
			user.LastName = strings.TrimSpace(*input.LastName)
		}
		if input.Gender != nil {
			user.Gender = entity.Gender(strings.ToLower(strings.TrimSpace(*input.Gender)))
		}
		user.Email = newEmail
		user.Phone = newPhone

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		view = usecase.NewUserView(user)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, err
	}
	srv.log(ctx).Info("User updated", slog.Any("user_id", userID))

	return view, nil
}

// Delete hard-deletes the account and returns its last sanitized state.
func (srv *userAccountService) Delete(ctx context.Context, userID uuid.UUID) (*usecase.UserView, error) {
	var view *usecase.UserView
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		userRepo := f.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to load user")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return err
		}
		view = usecase.NewUserView(user)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User deletion failed", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, err
	}
	srv.log(ctx).Info("User deleted", slog.Any("user_id", userID))

	return view, nil
}
