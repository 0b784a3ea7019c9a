package repository

import (
	"context"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository is the row boundary of the 'cart_items' collection.
// Rows are keyed by (user, product).
type CartRepository interface {
	// FindByUser returns the cart lines of userID joined with their products.
	FindByUser(ctx context.Context, userID string) (entity.Cart, error)

	// Upsert inserts the (user, product) row or adds quantity to the existing one.
	Upsert(ctx context.Context, userID string, productID uuid.UUID, quantity int) error

	// UpdateQuantity sets the quantity of an existing line.
	UpdateQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error

	// Delete removes one line.
	Delete(ctx context.Context, userID string, productID uuid.UUID) error

	// DeleteAll removes every line of userID.
	DeleteAll(ctx context.Context, userID string) error
}

// WishlistRepository is the row boundary of the 'wishlist_items' collection.
type WishlistRepository interface {
	// FindProductIDs returns the liked product ids of userID, oldest first.
	FindProductIDs(ctx context.Context, userID string) (entity.Wishlist, error)

	// Insert adds a (user, product) row. Inserting an existing pair is a no-op.
	Insert(ctx context.Context, userID string, productID uuid.UUID) error

	// Delete removes a (user, product) row.
	Delete(ctx context.Context, userID string, productID uuid.UUID) error
}
