package impl

import (
	"context"
	"log/slog"

	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	repo   repository.CartRepository
	logger *slog.Logger

	cart mirror[usecase.CartStorage, entity.Cart]
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		repo:   params.CartRepo,
		logger: params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SessionStarted selects the storage of the new identity and loads its cart.
func (srv *cartService) SessionStarted(ctx context.Context, user *entity.User) {
	var storage usecase.CartStorage
	if user.IsDemo() {
		storage = newMemoryCartStorage()
	} else {
		storage = newRemoteCartStorage(srv.repo, user.ID)
	}
	srv.cart.reset(storage, nil)

	srv.Refresh(ctx)
}

// SessionEnded drops the cart and its storage.
func (srv *cartService) SessionEnded(context.Context) {
	srv.cart.reset(nil, nil)
}

// Refresh reloads the cart from its storage.
func (srv *cartService) Refresh(ctx context.Context) {
	if storage := srv.cart.current(); storage != nil {
		srv.refetch(ctx, storage)
	}
}

// refetch reads storage back into the mirror unless the session moved on meanwhile.
func (srv *cartService) refetch(ctx context.Context, storage usecase.CartStorage) {
	source, ticket := srv.cart.begin()
	if source != storage {
		return
	}

	items, err := storage.Fetch(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch cart", slog.Any("error", err))

		return
	}
	srv.cart.apply(storage, ticket, items)
}

func (srv *cartService) Items() entity.Cart {
	return srv.cart.get().Clone()
}

func (srv *cartService) Total() decimal.Decimal {
	return srv.cart.get().Total()
}

func (srv *cartService) ItemCount() int {
	return srv.cart.get().ItemCount()
}

// AddToCart adds quantity units of product. A non-positive quantity adds one unit.
func (srv *cartService) AddToCart(ctx context.Context, product *entity.Product, quantity int) error {
	if product == nil {
		return domainerrors.ErrProductNotFound
	}
	if quantity <= 0 {
		quantity = 1
	}

	return srv.mutate(ctx, "add to cart", func(storage usecase.CartStorage) error {
		return storage.Add(ctx, product, quantity)
	}, slog.String("product_id", product.ID.String()), slog.Int("quantity", quantity))
}

// UpdateQuantity sets the quantity of a line as given.
func (srv *cartService) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) error {
	return srv.mutate(ctx, "update cart quantity", func(storage usecase.CartStorage) error {
		return storage.SetQuantity(ctx, productID, quantity)
	}, slog.String("product_id", productID.String()), slog.Int("quantity", quantity))
}

func (srv *cartService) RemoveFromCart(ctx context.Context, productID uuid.UUID) error {
	return srv.mutate(ctx, "remove from cart", func(storage usecase.CartStorage) error {
		return storage.Remove(ctx, productID)
	}, slog.String("product_id", productID.String()))
}

// ClearCart empties the cart. The result is known, so the mirror is set without a refetch.
func (srv *cartService) ClearCart(ctx context.Context) error {
	storage := srv.cart.current()
	if storage == nil {
		return domainerrors.ErrNotAuthenticated
	}

	if err := storage.Clear(ctx); err != nil {
		srv.log(ctx).Error("Cart mutation failed", slog.String("op", "clear cart"), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear cart")
	}

	_, ticket := srv.cart.begin()
	srv.cart.apply(storage, ticket, entity.Cart{})

	return nil
}

// mutate writes through storage, then refetches. The refetch ticket is taken only
// once the write has settled, so its result always includes this write.
func (srv *cartService) mutate(ctx context.Context, op string, write func(usecase.CartStorage) error, attrs ...any) error {
	storage := srv.cart.current()
	if storage == nil {
		return domainerrors.ErrNotAuthenticated
	}

	if err := write(storage); err != nil {
		srv.log(ctx).Error("Cart mutation failed", append(attrs, slog.String("op", op), slog.Any("error", err))...)

		return errors.Wrapf(err, "failed to %s", op)
	}

	srv.refetch(ctx, storage)

	return nil
}
