package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sellerRepository implements the domain.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// FindByID retrieves a single seller by their unique ID.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByPhone retrieves a seller by their unique phone number.
func (repo *sellerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).Where("phone = ?", phone).First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by phone")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByUniqueFields retrieves a seller matching any of the unique fields.
// Empty values are ignored.
func (repo *sellerRepository) FindByUniqueFields(ctx context.Context, email, phone, gstn string) (*entity.Seller, error) {
	query := repo.db.WithContext(ctx)

	conditions := ""
	args := make([]any, 0, 3)
	appendCondition := func(clause string, value string) {
		if value == "" {
			return
		}
		if conditions != "" {
			conditions += " OR "
		}
		conditions += clause
		args = append(args, value)
	}
	appendCondition("email = ?", email)
	appendCondition("phone = ?", phone)
	appendCondition("gstn = ?", gstn)

	if conditions == "" {
		return nil, repository.ErrSellerNotFound
	}

	var sellerM model.SellerModel
	if err := query.Where(conditions, args...).First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by unique fields")
	}

	return toSellerDomain(&sellerM), nil
}

// Create persists a new seller entity to the database.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required seller information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// Update modifies an existing seller entity in the database.
func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Save(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update seller")
	}

	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// UpdateRefreshToken persists only the refresh credential column.
func (repo *sellerRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", id).
		Update("refresh_token", token)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// Delete removes a seller by ID. Returns ErrSellerNotFound if no row matched.
func (repo *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SellerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete seller")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSellerDomain converts a GORM SellerModel to a domain Seller entity.
func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:             data.ID,
		FullName:       data.FullName,
		Email:          data.Email,
		Phone:          data.Phone,
		DisplayName:    data.DisplayName,
		GSTN:           data.GSTN,
		PasswordHash:   data.PasswordHash,
		PickupLocation: data.PickupLocation,
		Pincode:        data.Pincode,
		RefreshToken:   data.RefreshToken,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromSellerDomain converts a domain Seller entity to a GORM SellerModel for persistence.
func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:             data.ID,
		FullName:       data.FullName,
		Email:          data.Email,
		Phone:          data.Phone,
		DisplayName:    data.DisplayName,
		GSTN:           data.GSTN,
		PasswordHash:   data.PasswordHash,
		PickupLocation: data.PickupLocation,
		Pincode:        data.Pincode,
		RefreshToken:   data.RefreshToken,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
