package usecase

import (
	"context"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase is the mirror of active stores and products.
type CatalogUsecase interface {
	// FetchAll reloads active stores and products. Failures are logged and leave the mirror as is.
	FetchAll(ctx context.Context)

	Stores() []*entity.Store
	Products() []*entity.Product
	Product(id uuid.UUID) (*entity.Product, bool)
	Store(id uuid.UUID) (*entity.Store, bool)

	// MyStores filters the mirror by owner.
	MyStores(userID string) []*entity.Store

	// MyProducts filters the mirror by effective owner.
	MyProducts(userID string) []*entity.Product

	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)
	CreateProduct(ctx context.Context, input *CreateProductInput, files []ImageFile) (*entity.Product, error)
	UpdateStore(ctx context.Context, id uuid.UUID, input *UpdateStoreInput) error
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput, files []ImageFile) error
	DeactivateProduct(ctx context.Context, id uuid.UUID) error

	// ProductOwner loads the profile of the effective owner of a product.
	ProductOwner(ctx context.Context, productID uuid.UUID) (*entity.User, error)

	// StoreShareCode renders the QR code of a store link.
	StoreShareCode(ctx context.Context, storeID uuid.UUID) ([]byte, error)
}

// ImageFile is an attached upload.
type ImageFile struct {
	Name string
	Data []byte
}

// CreateStoreInput carries a new store.
type CreateStoreInput struct {
	Name        string    `json:"name" validate:"required,max=120"`
	Description string    `json:"description" validate:"max=2000"`
	Address     string    `json:"address" validate:"required,max=255"`
	Images      []string  `json:"images" validate:"max=10,dive,url"`
	Coordinates []float64 `json:"coordinates" validate:"omitempty,len=2"`
}

// CreateProductInput carries a new product.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Category    string          `json:"category" validate:"required,max=60"`
	Stock       int             `json:"stock" validate:"gte=0"`
	StoreID     *uuid.UUID      `json:"storeId,omitempty"`
}

// UpdateStoreInput carries the editable fields of a store.
type UpdateStoreInput struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	Images      []string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
}

// UpdateProductInput carries the editable fields of a product.
type UpdateProductInput struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=60"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Images      []string         `json:"images,omitempty" validate:"omitempty,max=3,dive,url"`
	StoreID     *uuid.UUID       `json:"storeId,omitempty"`
	ClearStore  bool             `json:"clearStore,omitempty"`
}
