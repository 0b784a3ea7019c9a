package repository

import (
	"context"
	"errors"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository is the row boundary of the 'stores' collection.
type StoreRepository interface {
	// FindActive returns every active store, newest first.
	FindActive(ctx context.Context) ([]*entity.Store, error)

	// FindByID retrieves a store regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// Create inserts a store and fills in its generated fields.
	Create(ctx context.Context, store *entity.Store) error

	// Update writes the present fields of update on the store owned by ownerID.
	Update(ctx context.Context, id uuid.UUID, ownerID string, update entity.StoreUpdate) error
}
