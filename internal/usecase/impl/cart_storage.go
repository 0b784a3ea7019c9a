package impl

import (
	"context"
	"sync"

	"chaski/internal/domain/entity"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/usecase"

	"github.com/google/uuid"
)

// memoryCartStorage keeps the demo cart in process. It never performs I/O.
type memoryCartStorage struct {
	mu    sync.Mutex
	items entity.Cart
}

func newMemoryCartStorage() usecase.CartStorage {
	return &memoryCartStorage{}
}

func (s *memoryCartStorage) Fetch(context.Context) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.items.Clone(), nil
}

func (s *memoryCartStorage) Add(_ context.Context, product *entity.Product, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.items.IndexOf(product.ID); idx >= 0 {
		s.items[idx].Quantity += quantity
	} else {
		s.items = append(s.items, entity.CartItem{Product: product, Quantity: quantity})
	}

	return nil
}

func (s *memoryCartStorage) SetQuantity(_ context.Context, productID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.items.IndexOf(productID); idx >= 0 {
		s.items[idx].Quantity = quantity
	}

	return nil
}

func (s *memoryCartStorage) Remove(_ context.Context, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.items.IndexOf(productID); idx >= 0 {
		s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	}

	return nil
}

func (s *memoryCartStorage) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	return nil
}

// remoteCartStorage writes the cart rows of one identity.
type remoteCartStorage struct {
	repo   repository.CartRepository
	userID string
}

func newRemoteCartStorage(repo repository.CartRepository, userID string) usecase.CartStorage {
	return &remoteCartStorage{repo: repo, userID: userID}
}

func (s *remoteCartStorage) Fetch(ctx context.Context) (entity.Cart, error) {
	cart, err := s.repo.FindByUser(ctx, s.userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch cart")
	}

	return cart, nil
}

func (s *remoteCartStorage) Add(ctx context.Context, product *entity.Product, quantity int) error {
	return errors.Wrap(s.repo.Upsert(ctx, s.userID, product.ID, quantity), "failed to upsert cart item")
}

func (s *remoteCartStorage) SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) error {
	return errors.Wrap(s.repo.UpdateQuantity(ctx, s.userID, productID, quantity), "failed to update cart quantity")
}

func (s *remoteCartStorage) Remove(ctx context.Context, productID uuid.UUID) error {
	return errors.Wrap(s.repo.Delete(ctx, s.userID, productID), "failed to delete cart item")
}

func (s *remoteCartStorage) Clear(ctx context.Context) error {
	return errors.Wrap(s.repo.DeleteAll(ctx, s.userID), "failed to clear cart")
}

// memoryWishlistStorage keeps the demo wishlist in process.
type memoryWishlistStorage struct {
	mu  sync.Mutex
	ids entity.Wishlist
}

func newMemoryWishlistStorage() usecase.WishlistStorage {
	return &memoryWishlistStorage{}
}

func (s *memoryWishlistStorage) Fetch(context.Context) (entity.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(entity.Wishlist(nil), s.ids...), nil
}

func (s *memoryWishlistStorage) Toggle(_ context.Context, _ entity.Wishlist, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = s.ids.Toggle(productID)

	return nil
}

// remoteWishlistStorage writes the wishlist rows of one identity.
type remoteWishlistStorage struct {
	repo   repository.WishlistRepository
	userID string
}

func newRemoteWishlistStorage(repo repository.WishlistRepository, userID string) usecase.WishlistStorage {
	return &remoteWishlistStorage{repo: repo, userID: userID}
}

func (s *remoteWishlistStorage) Fetch(ctx context.Context) (entity.Wishlist, error) {
	ids, err := s.repo.FindProductIDs(ctx, s.userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch wishlist")
	}

	return ids, nil
}

// Toggle decides from the mirrored membership; the remote set is never read first.
func (s *remoteWishlistStorage) Toggle(ctx context.Context, current entity.Wishlist, productID uuid.UUID) error {
	if current.Contains(productID) {
		return errors.Wrap(s.repo.Delete(ctx, s.userID, productID), "failed to delete wishlist item")
	}

	return errors.Wrap(s.repo.Insert(ctx, s.userID, productID), "failed to insert wishlist item")
}
