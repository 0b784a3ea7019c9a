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
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindActive(ctx context.Context) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	if err := repo.db.WithContext(ctx).Scopes(active).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateImages replaces the image list and keeps the legacy image column on the first entry.
func (repo *productRepository) UpdateImages(ctx context.Context, id uuid.UUID, images []string) error {
	primary := ""
	if len(images) > 0 {
		primary = images[0]
	}

	return repo.updateColumns(ctx, id, map[string]any{
		"images": pq.StringArray(nonNilStrings(images)),
		"image":  primary,
	})
}

func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, update entity.ProductUpdate) error {
	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Price != nil {
		columns["price"] = *update.Price
	}
	if update.Category != nil {
		columns["category"] = *update.Category
	}
	if update.Stock != nil {
		columns["stock"] = *update.Stock
	}
	if update.Images != nil {
		columns["images"] = pq.StringArray(update.Images)
		columns["image"] = ""
		if len(update.Images) > 0 {
			columns["image"] = update.Images[0]
		}
	}
	switch {
	case update.ClearStore:
		columns["store_id"] = nil
	case update.StoreID != nil:
		columns["store_id"] = *update.StoreID
	}
	if len(columns) == 0 {
		return nil
	}

	return repo.updateColumns(ctx, id, columns)
}

func (repo *productRepository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	return repo.updateColumns(ctx, id, map[string]any{"is_active": isActive})
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Images:      nonNilStrings(data.Images),
		StoreID:     data.StoreID,
		Category:    data.Category,
		IsActive:    data.IsActive,
		Stock:       data.Stock,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	product.SyncImages()

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.PrimaryImage(),
		Images:      pq.StringArray(nonNilStrings(data.Images)),
		StoreID:     data.StoreID,
		Category:    data.Category,
		IsActive:    data.IsActive,
		Stock:       data.Stock,
		UserID:      data.UserID,
	}
}
