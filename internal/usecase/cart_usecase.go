package usecase

import (
	"context"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartStorage is where a cart mirror writes through. Writes only report whether
// they settled; the mirror reads the resulting state back through Fetch.
type CartStorage interface {
	Fetch(ctx context.Context) (entity.Cart, error)
	Add(ctx context.Context, product *entity.Product, quantity int) error
	SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) error
	Remove(ctx context.Context, productID uuid.UUID) error
	Clear(ctx context.Context) error
}

// WishlistStorage is where a wishlist mirror writes through.
type WishlistStorage interface {
	Fetch(ctx context.Context) (entity.Wishlist, error)

	// Toggle flips the membership of productID, deciding from current.
	Toggle(ctx context.Context, current entity.Wishlist, productID uuid.UUID) error
}

// CartUsecase is the cart mirror of the current identity.
type CartUsecase interface {
	SessionListener

	// Refresh reloads the cart. Failures are logged and leave the mirror as is.
	Refresh(ctx context.Context)

	Items() entity.Cart
	Total() decimal.Decimal
	ItemCount() int

	// AddToCart adds quantity units of product, defaulting to one.
	AddToCart(ctx context.Context, product *entity.Product, quantity int) error

	// UpdateQuantity sets the quantity of a line. Callers clamp before calling.
	UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) error

	RemoveFromCart(ctx context.Context, productID uuid.UUID) error
	ClearCart(ctx context.Context) error
}

// WishlistUsecase is the wishlist mirror of the current identity.
type WishlistUsecase interface {
	SessionListener

	// Refresh reloads the wishlist. Failures are logged and leave the mirror as is.
	Refresh(ctx context.Context)

	IDs() entity.Wishlist
	Contains(productID uuid.UUID) bool

	// WishlistProducts intersects catalog with the wishlist.
	WishlistProducts(catalog []*entity.Product) []*entity.Product

	ToggleWishlist(ctx context.Context, productID uuid.UUID) error
}

// AddToCartInput carries an add request.
type AddToCartInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

// UpdateQuantityInput carries a quantity change.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}
