package impl

import (
	"context"
	"slices"
	"sync"
	"testing"

	"chaski/internal/domain/entity"
	mockRepo "chaski/internal/mocks/repository"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWishlistService(t *testing.T) (usecase.WishlistUsecase, *mockRepo.MockWishlistRepository) {
	repo := mockRepo.NewMockWishlistRepository(t)

	return NewWishlistService(WishlistServiceParams{WishlistRepo: repo, Logger: newTestLogger()}), repo
}

func TestWishlistService_Demo_ToggleIsInvolution(t *testing.T) {
	service, _ := createTestWishlistService(t)
	ctx := context.Background()
	service.SessionStarted(ctx, entity.DemoUser())

	productID := uuid.New()

	require.NoError(t, service.ToggleWishlist(ctx, productID))
	assert.True(t, service.Contains(productID))

	require.NoError(t, service.ToggleWishlist(ctx, productID))
	assert.False(t, service.Contains(productID))
	assert.Empty(t, service.IDs())
}

func TestWishlistService_Remote_BranchesOnMirrorMembership(t *testing.T) {
	service, repo := createTestWishlistService(t)
	ctx := context.Background()
	user := newTestUser()
	productID := uuid.New()

	repo.EXPECT().FindProductIDs(ctx, user.ID).Return(entity.Wishlist{}, nil).Once()
	service.SessionStarted(ctx, user)

	repo.EXPECT().Insert(ctx, user.ID, productID).Return(nil)
	repo.EXPECT().FindProductIDs(ctx, user.ID).Return(entity.Wishlist{productID}, nil).Once()
	require.NoError(t, service.ToggleWishlist(ctx, productID))
	assert.True(t, service.Contains(productID))

	repo.EXPECT().Delete(ctx, user.ID, productID).Return(nil)
	repo.EXPECT().FindProductIDs(ctx, user.ID).Return(entity.Wishlist{}, nil).Once()
	require.NoError(t, service.ToggleWishlist(ctx, productID))
	assert.False(t, service.Contains(productID))
}

func TestWishlistService_WishlistProducts(t *testing.T) {
	service, _ := createTestWishlistService(t)
	ctx := context.Background()
	service.SessionStarted(ctx, entity.DemoUser())

	liked := newTestProduct("4.00")
	other := newTestProduct("6.00")
	require.NoError(t, service.ToggleWishlist(ctx, liked.ID))

	products := service.WishlistProducts([]*entity.Product{other, liked})

	require.Len(t, products, 1)
	assert.Equal(t, liked.ID, products[0].ID)

	service.SessionEnded(ctx)
	assert.Empty(t, service.WishlistProducts([]*entity.Product{other, liked}))
}

// gatedWishlistRepository keeps wishlist rows in memory; inserts of a gated
// product wait until the gate is closed.
type gatedWishlistRepository struct {
	mu      sync.Mutex
	ids     entity.Wishlist
	gated   uuid.UUID
	gate    chan struct{}
	entered chan struct{}
}

func (r *gatedWishlistRepository) FindProductIDs(context.Context, string) (entity.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.ids), nil
}

func (r *gatedWishlistRepository) Insert(_ context.Context, _ string, productID uuid.UUID) error {
	if productID == r.gated {
		close(r.entered)
		<-r.gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ids.Contains(productID) {
		r.ids = append(r.ids, productID)
	}

	return nil
}

func (r *gatedWishlistRepository) Delete(_ context.Context, _ string, productID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = slices.DeleteFunc(r.ids, func(id uuid.UUID) bool { return id == productID })

	return nil
}

func TestWishlistService_Remote_SlowToggleIsNotLost(t *testing.T) {
	ctx := context.Background()
	slow, fast := uuid.New(), uuid.New()
	repo := &gatedWishlistRepository{gated: slow, gate: make(chan struct{}), entered: make(chan struct{})}
	service := NewWishlistService(WishlistServiceParams{WishlistRepo: repo, Logger: newTestLogger()})
	service.SessionStarted(ctx, newTestUser())

	done := make(chan error, 1)
	go func() {
		done <- service.ToggleWishlist(ctx, slow)
	}()
	<-repo.entered

	require.NoError(t, service.ToggleWishlist(ctx, fast))
	assert.False(t, service.Contains(slow))

	close(repo.gate)
	require.NoError(t, <-done)

	assert.True(t, service.Contains(slow))
	assert.True(t, service.Contains(fast))
}
