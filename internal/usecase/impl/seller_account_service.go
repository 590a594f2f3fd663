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

// sellerAccountService implements the SellerUsecase interface.
type sellerAccountService struct {
	txManager repository.TransactionManager
	hasher    service.SellerPasswordHasher
	logger    *slog.Logger
	flow      *credentialFlow[entity.Seller]
}

// NewSellerAccountService is the constructor for sellerAccountService.
func NewSellerAccountService(
	txManager repository.TransactionManager,
	hasher service.SellerPasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SellerUsecase {
	return &sellerAccountService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
		flow: &credentialFlow[entity.Seller]{
			tokens:        tokenSvc,
			id:            func(s *entity.Seller) uuid.UUID { return s.ID },
			email:         func(s *entity.Seller) string { return s.Email },
			phone:         func(s *entity.Seller) string { return s.Phone },
			storedRefresh: func(s *entity.Seller) *string { return s.RefreshToken },
			find: func(ctx context.Context, f repository.RepositoryFactory, id uuid.UUID) (*entity.Seller, error) {
				return f.SellerRepo().FindByID(ctx, id)
			},
			saveRefresh: func(ctx context.Context, f repository.RepositoryFactory, id uuid.UUID, token *string) error {
				return f.SellerRepo().UpdateRefreshToken(ctx, id, token)
			},
			notFound: repository.ErrSellerNotFound,
		},
	}
}

func (srv *sellerAccountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new seller account. Email, phone and GSTN are all
// unique; a match on any of them is a conflict.
func (srv *sellerAccountService) Register(ctx context.Context, input *usecase.RegisterSellerInput) (*usecase.SellerView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	gstn := strings.TrimSpace(input.GSTN)

	passwordHash, err := srv.hasher.Hash(strings.TrimSpace(input.Password))
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt hash failed")
	}

	var view *usecase.SellerView
	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		sellerRepo := f.SellerRepo()

		if _, err := sellerRepo.FindByUniqueFields(ctx, email, phone, gstn); err == nil {
			return domainerrors.ErrAccountAlreadyExists
		} else if !errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(err, "failed to check seller uniqueness")
		}

		seller := &entity.Seller{
			FullName:       strings.TrimSpace(input.FullName),
			Email:          email,
			Phone:          phone,
			DisplayName:    strings.TrimSpace(input.DisplayName),
			GSTN:           gstn,
			PasswordHash:   passwordHash,
			PickupLocation: strings.TrimSpace(input.PickupLocation),
			Pincode:        strings.TrimSpace(input.Pincode),
		}

		if err := sellerRepo.Create(ctx, seller); err != nil {
			return err
		}

		created, err := sellerRepo.FindByID(ctx, seller.ID)
		if err != nil {
			return domainerrors.ErrInternalError.WithMessage("Something went wrong while creating seller")
		}
		view = usecase.NewSellerView(created)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Seller registration failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Seller registered", slog.Any("seller_id", view.ID))

	return view, nil
}

// Login verifies phone and password, then issues a fresh token pair.
func (srv *sellerAccountService) Login(ctx context.Context, input *usecase.LoginSellerInput) (*usecase.LoginSellerOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(input.Phone)

	var output *usecase.LoginSellerOutput
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		seller, err := f.SellerRepo().FindByPhone(ctx, phone)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrInvalidCredentials.WithMessage("Invalid phone number")
			}

			return errors.Wrap(err, "failed to look up seller")
		}

		if !srv.hasher.Check(input.Password, seller.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WithMessage("Invalid password")
		}

		pair, err := srv.flow.issueAndPersist(ctx, f, seller)
		if err != nil {
			return err
		}

		output = &usecase.LoginSellerOutput{
			AccessToken:  pair.access,
			RefreshToken: pair.refresh,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Seller login failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Seller logged in")

	return output, nil
}

// Logout clears the stored refresh credential.
func (srv *sellerAccountService) Logout(ctx context.Context, sellerID uuid.UUID) error {
	if err := srv.flow.dropRefresh(ctx, srv.txManager, sellerID); err != nil {
		srv.log(ctx).Warn("Seller logout failed", slog.Any("error", err), slog.Any("seller_id", sellerID))

		return err
	}
	srv.log(ctx).Info("Seller logged out", slog.Any("seller_id", sellerID))

	return nil
}

// RefreshTokens exchanges a valid refresh credential for a new pair.
func (srv *sellerAccountService) RefreshTokens(ctx context.Context, presented string) (*usecase.TokenPairOutput, error) {
	pair, err := srv.flow.rotate(ctx, srv.txManager, presented)
	if err != nil {
		srv.log(ctx).Warn("Seller token refresh rejected", slog.Any("error", err))

		return nil, err
	}

	return &usecase.TokenPairOutput{AccessToken: pair.access, RefreshToken: pair.refresh}, nil
}

// UpdateName updates full name and/or display name.
func (srv *sellerAccountService) UpdateName(ctx context.Context, sellerID uuid.UUID, input *usecase.UpdateSellerNameInput) (*usecase.SellerView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return srv.update(ctx, sellerID, func(seller *entity.Seller) error {
		if input.FullName != nil {
			seller.FullName = strings.TrimSpace(*input.FullName)
		}
		if input.DisplayName != nil {
			seller.DisplayName = strings.TrimSpace(*input.DisplayName)
		}

		return nil
	})
}

// UpdateContact updates phone and/or email, re-checking uniqueness.
func (srv *sellerAccountService) UpdateContact(ctx context.Context, sellerID uuid.UUID, input *usecase.UpdateSellerContactInput) (*usecase.SellerView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var view *usecase.SellerView
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		sellerRepo := f.SellerRepo()

		seller, err := sellerRepo.FindByID(ctx, sellerID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to load seller")
		}

		newEmail := seller.Email
		newPhone := seller.Phone
		if input.Email != nil {
			newEmail = strings.TrimSpace(*input.Email)
		}
		if input.Phone != nil {
			newPhone = strings.TrimSpace(*input.Phone)
		}

		if newEmail != seller.Email || newPhone != seller.Phone {
			existing, err := sellerRepo.FindByUniqueFields(ctx, newEmail, newPhone, "")
			if err != nil && !errors.Is(err, repository.ErrSellerNotFound) {
				return errors.Wrap(err, "failed to check seller uniqueness")
			}
			if err == nil && existing.ID != sellerID {
				return domainerrors.ErrAccountAlreadyExists
			}
		}

		seller.Email = newEmail
		seller.Phone = newPhone

		if err := sellerRepo.Update(ctx, seller); err != nil {
			return err
		}
		view = usecase.NewSellerView(seller)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Seller contact update failed", slog.Any("error", err), slog.Any("seller_id", sellerID))

		return nil, err
	}
	srv.log(ctx).Info("Seller contact updated", slog.Any("seller_id", sellerID))

	return view, nil
}

// UpdatePassword re-hashes and stores a new password.
func (srv *sellerAccountService) UpdatePassword(ctx context.Context, sellerID uuid.UUID, input *usecase.UpdateSellerPasswordInput) (*usecase.SellerView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(strings.TrimSpace(input.Password))
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt hash failed")
	}

	return srv.update(ctx, sellerID, func(seller *entity.Seller) error {
		seller.PasswordHash = passwordHash

		return nil
	})
}

// UpdateLocation updates pickup location and/or pincode.
func (srv *sellerAccountService) UpdateLocation(ctx context.Context, sellerID uuid.UUID, input *usecase.UpdateSellerLocationInput) (*usecase.SellerView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return srv.update(ctx, sellerID, func(seller *entity.Seller) error {
		if input.PickupLocation != nil {
			seller.PickupLocation = strings.TrimSpace(*input.PickupLocation)
		}
		if input.Pincode != nil {
			seller.Pincode = strings.TrimSpace(*input.Pincode)
		}

		return nil
	})
}

// update loads the seller, applies the mutation and saves, all within one
// transaction. Used by the update paths that cannot hit a unique index.
func (srv *sellerAccountService) update(ctx context.Context, sellerID uuid.UUID, mutate func(*entity.Seller) error) (*usecase.SellerView, error) {
	var view *usecase.SellerView
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		sellerRepo := f.SellerRepo()

		seller, err := sellerRepo.FindByID(ctx, sellerID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to load seller")
		}

		if err := mutate(seller); err != nil {
			return err
		}

		if err := sellerRepo.Update(ctx, seller); err != nil {
			return err
		}
		view = usecase.NewSellerView(seller)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Seller update failed", slog.Any("error", err), slog.Any("seller_id", sellerID))

		return nil, err
	}
	srv.log(ctx).Info("Seller updated", slog.Any("seller_id", sellerID))

	return view, nil
}

// Delete hard-deletes the account and returns its last sanitized state.
func (srv *sellerAccountService) Delete(ctx context.Context, sellerID uuid.UUID) (*usecase.SellerView, error) {
	var view *usecase.SellerView
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		sellerRepo := f.SellerRepo()

		seller, err := sellerRepo.FindByID(ctx, sellerID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to load seller")
		}

		if err := sellerRepo.Delete(ctx, sellerID); err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return err
		}
		view = usecase.NewSellerView(seller)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Seller deletion failed", slog.Any("error", err), slog.Any("seller_id", sellerID))

		return nil, err
	}
	srv.log(ctx).Info("Seller deleted", slog.Any("seller_id", sellerID))

	return view, nil
}
