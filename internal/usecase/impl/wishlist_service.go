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
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	repo   repository.WishlistRepository
	logger *slog.Logger

	ids mirror[usecase.WishlistStorage, entity.Wishlist]
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		repo:   params.WishlistRepo,
		logger: params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *wishlistService) SessionStarted(ctx context.Context, user *entity.User) {
	var storage usecase.WishlistStorage
	if user.IsDemo() {
		storage = newMemoryWishlistStorage()
	} else {
		storage = newRemoteWishlistStorage(srv.repo, user.ID)
	}
	srv.ids.reset(storage, nil)

	srv.Refresh(ctx)
}

func (srv *wishlistService) SessionEnded(context.Context) {
	srv.ids.reset(nil, nil)
}

func (srv *wishlistService) Refresh(ctx context.Context) {
	if storage := srv.ids.current(); storage != nil {
		srv.refetch(ctx, storage)
	}
}

func (srv *wishlistService) refetch(ctx context.Context, storage usecase.WishlistStorage) {
	source, ticket := srv.ids.begin()
	if source != storage {
		return
	}

	ids, err := storage.Fetch(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch wishlist", slog.Any("error", err))

		return
	}
	srv.ids.apply(storage, ticket, ids)
}

func (srv *wishlistService) IDs() entity.Wishlist {
	return append(entity.Wishlist(nil), srv.ids.get()...)
}

func (srv *wishlistService) Contains(productID uuid.UUID) bool {
	return srv.ids.get().Contains(productID)
}

func (srv *wishlistService) WishlistProducts(catalog []*entity.Product) []*entity.Product {
	return srv.ids.get().Products(catalog)
}

// ToggleWishlist flips the membership of productID as seen by the mirror, then refetches.
func (srv *wishlistService) ToggleWishlist(ctx context.Context, productID uuid.UUID) error {
	storage := srv.ids.current()
	if storage == nil {
		return domainerrors.ErrNotAuthenticated
	}

	if err := storage.Toggle(ctx, srv.ids.get(), productID); err != nil {
		srv.log(ctx).Error("Failed to toggle wishlist", slog.Any("error", err), slog.String("product_id", productID.String()))

		return errors.Wrap(err, "failed to toggle wishlist")
	}

	srv.refetch(ctx, storage)

	return nil
}
