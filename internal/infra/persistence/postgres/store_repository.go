package postgres

import (
	"context"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (repo *storeRepository) FindActive(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []model.StoreModel
	if err := repo.db.WithContext(ctx).Scopes(active).Order("created_at DESC").Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for i := range storeModels {
		stores = append(stores, toStoreDomain(&storeModels[i]))
	}

	return stores, nil
}

func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update filters on owner_id as well, so a foreign store matches no row.
func (repo *storeRepository) Update(ctx context.Context, id uuid.UUID, ownerID string, update entity.StoreUpdate) error {
	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Address != nil {
		columns["address"] = *update.Address
	}
	if update.Images != nil {
		columns["images"] = pq.StringArray(update.Images)
	}
	if len(columns) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// active restricts a query to rows whose is_active flag is set.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Images:      nonNilStrings(data.Images),
		Address:     data.Address,
		OwnerID:     data.OwnerID,
		Coordinates: orb.Point(data.Coordinates),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Images:      pq.StringArray(nonNilStrings(data.Images)),
		Address:     data.Address,
		OwnerID:     data.OwnerID,
		Coordinates: model.GeoPoint(data.Coordinates),
		IsActive:    data.IsActive,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
