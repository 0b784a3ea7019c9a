package repository

import (
	"context"
	"errors"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the row boundary of the 'products' collection.
type ProductRepository interface {
	// FindActive returns every active product, newest first.
	FindActive(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a product regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create inserts a product and fills in its generated fields.
	Create(ctx context.Context, product *entity.Product) error

	// UpdateImages replaces the image list and the legacy primary image.
	UpdateImages(ctx context.Context, id uuid.UUID, images []string) error

	// Update writes the present fields of update.
	Update(ctx context.Context, id uuid.UUID, update entity.ProductUpdate) error

	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// Delete removes the row for good. Used as the compensating action of a failed creation.
	Delete(ctx context.Context, id uuid.UUID) error
}
