package impl

import (
	"context"
	"sync"
	"testing"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/errors"
	mockRepo "chaski/internal/mocks/repository"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service usecase.CartUsecase
	repo    *mockRepo.MockCartRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	repo := mockRepo.NewMockCartRepository(t)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{CartRepo: repo, Logger: newTestLogger()}),
		repo:    repo,
	}
}

func TestCartService_Demo_TotalsAndIncrements(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.service.SessionStarted(ctx, entity.DemoUser())

	product := newTestProduct("10.99")

	require.NoError(t, fx.service.AddToCart(ctx, product, 1))
	require.NoError(t, fx.service.AddToCart(ctx, product, 0))

	items := fx.service.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("21.98").Equal(fx.service.Total()))
	assert.Equal(t, 2, fx.service.ItemCount())
}

func TestCartService_Demo_UpdateRemoveClear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.service.SessionStarted(ctx, entity.DemoUser())

	api := newTestProduct("5.00")
	salteña := newTestProduct("7.50")
	require.NoError(t, fx.service.AddToCart(ctx, api, 1))
	require.NoError(t, fx.service.AddToCart(ctx, salteña, 3))

	require.NoError(t, fx.service.UpdateQuantity(ctx, api.ID, 4))
	assert.Equal(t, 7, fx.service.ItemCount())

	require.NoError(t, fx.service.RemoveFromCart(ctx, salteña.ID))
	assert.Equal(t, 4, fx.service.ItemCount())
	assert.True(t, decimal.RequireFromString("20").Equal(fx.service.Total()))

	require.NoError(t, fx.service.ClearCart(ctx))
	assert.Empty(t, fx.service.Items())
	assert.True(t, fx.service.Total().IsZero())
}

func TestCartService_Remote_AddUpsertsThenRefetches(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := newTestUser()
	product := newTestProduct("10.99")

	fx.repo.EXPECT().FindByUser(ctx, user.ID).Return(entity.Cart{}, nil).Once()
	fx.service.SessionStarted(ctx, user)

	fx.repo.EXPECT().Upsert(ctx, user.ID, product.ID, 1).Return(nil)
	fx.repo.EXPECT().FindByUser(ctx, user.ID).Return(entity.Cart{{Product: product, Quantity: 2}}, nil).Once()

	require.NoError(t, fx.service.AddToCart(ctx, product, 0))

	assert.Equal(t, 2, fx.service.ItemCount())
	assert.True(t, decimal.RequireFromString("21.98").Equal(fx.service.Total()))
}

func TestCartService_Remote_MutationErrorIsReturned(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := newTestUser()
	product := newTestProduct("3.00")

	fx.repo.EXPECT().FindByUser(ctx, user.ID).Return(entity.Cart{{Product: product, Quantity: 1}}, nil).Once()
	fx.service.SessionStarted(ctx, user)

	fx.repo.EXPECT().UpdateQuantity(ctx, user.ID, product.ID, 5).Return(errors.New("connection reset"))

	err := fx.service.UpdateQuantity(ctx, product.ID, 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 1, fx.service.ItemCount())
}

func TestCartService_Remote_ClearSkipsRefetch(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.repo.EXPECT().FindByUser(ctx, user.ID).Return(entity.Cart{{Product: newTestProduct("1.00"), Quantity: 1}}, nil).Once()
	fx.service.SessionStarted(ctx, user)

	fx.repo.EXPECT().DeleteAll(ctx, user.ID).Return(nil)

	require.NoError(t, fx.service.ClearCart(ctx))
	assert.Empty(t, fx.service.Items())
}

func TestCartService_Remote_FetchFailureKeepsMirror(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.repo.EXPECT().FindByUser(ctx, user.ID).Return(entity.Cart{{Product: newTestProduct("1.00"), Quantity: 2}}, nil).Once()
	fx.service.SessionStarted(ctx, user)

	fx.repo.EXPECT().FindByUser(ctx, user.ID).Return(nil, errors.New("timeout")).Once()
	fx.service.Refresh(ctx)

	assert.Equal(t, 2, fx.service.ItemCount())
}

func TestCartService_SessionEnded_ResetsAndRejectsWrites(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.service.SessionStarted(ctx, entity.DemoUser())
	require.NoError(t, fx.service.AddToCart(ctx, newTestProduct("2.00"), 2))

	fx.service.SessionEnded(ctx)

	assert.Empty(t, fx.service.Items())
	assert.Zero(t, fx.service.ItemCount())
	assert.ErrorIs(t, fx.service.AddToCart(ctx, newTestProduct("2.00"), 1), domainerrors.ErrNotAuthenticated)

	// A fresh demo session starts from an empty cart.
	fx.service.SessionStarted(ctx, entity.DemoUser())
	assert.Empty(t, fx.service.Items())
}

// gatedCartRepository keeps cart rows in memory. Writes of a gated product wait
// until the gate is closed.
type gatedCartRepository struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
	lines    map[uuid.UUID]int
	gates    map[uuid.UUID]chan struct{}
	entered  chan uuid.UUID
}

func newGatedCartRepository(products ...*entity.Product) *gatedCartRepository {
	repo := &gatedCartRepository{
		products: make(map[uuid.UUID]*entity.Product),
		lines:    make(map[uuid.UUID]int),
		gates:    make(map[uuid.UUID]chan struct{}),
		entered:  make(chan uuid.UUID, 1),
	}
	for _, product := range products {
		repo.products[product.ID] = product
	}

	return repo
}

func (r *gatedCartRepository) gate(productID uuid.UUID) chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	gate := make(chan struct{})
	r.gates[productID] = gate

	return gate
}

func (r *gatedCartRepository) FindByUser(context.Context, string) (entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := entity.Cart{}
	for id, quantity := range r.lines {
		cart = append(cart, entity.CartItem{Product: r.products[id], Quantity: quantity})
	}

	return cart, nil
}

func (r *gatedCartRepository) Upsert(_ context.Context, _ string, productID uuid.UUID, quantity int) error {
	r.mu.Lock()
	gate := r.gates[productID]
	r.mu.Unlock()

	if gate != nil {
		r.entered <- productID
		<-gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[productID] += quantity

	return nil
}

func (r *gatedCartRepository) UpdateQuantity(_ context.Context, _ string, productID uuid.UUID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[productID] = quantity

	return nil
}

func (r *gatedCartRepository) Delete(_ context.Context, _ string, productID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lines, productID)

	return nil
}

func (r *gatedCartRepository) DeleteAll(context.Context, string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.lines)

	return nil
}

func TestCartService_Remote_SlowWriteIsNotLost(t *testing.T) {
	ctx := context.Background()
	slow := newTestProduct("4.50")
	fast := newTestProduct("2.00")
	repo := newGatedCartRepository(slow, fast)
	service := NewCartService(CartServiceParams{CartRepo: repo, Logger: newTestLogger()})
	service.SessionStarted(ctx, newTestUser())

	gate := repo.gate(slow.ID)
	done := make(chan error, 1)
	go func() {
		done <- service.AddToCart(ctx, slow, 1)
	}()
	require.Equal(t, slow.ID, <-repo.entered)

	require.NoError(t, service.AddToCart(ctx, fast, 2))
	require.Len(t, service.Items(), 1)

	close(gate)
	require.NoError(t, <-done)

	items := service.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, service.ItemCount())
	assert.True(t, decimal.RequireFromString("8.50").Equal(service.Total()))
}

func TestCartService_Demo_ConcurrentAddsAllLand(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.service.SessionStarted(ctx, entity.DemoUser())

	product := newTestProduct("1.00")

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			assert.NoError(t, fx.service.AddToCart(ctx, product, 1))
		})
	}
	wg.Wait()

	assert.Equal(t, 20, fx.service.ItemCount())
}
