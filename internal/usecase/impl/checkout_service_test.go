package impl

import (
	"context"
	"testing"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	mockRepo "chaski/internal/mocks/repository"
	mockUsecase "chaski/internal/mocks/usecase"
	"chaski/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	cart      *mockUsecase.MockCartUsecase
	identity  *mockUsecase.MockIdentityProvider
	txManager *mockRepo.MockTransactionManager
	orders    *mockRepo.MockOrderRepository
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	fx := checkoutServiceFixtures{
		cart:      mockUsecase.NewMockCartUsecase(t),
		identity:  mockUsecase.NewMockIdentityProvider(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		orders:    mockRepo.NewMockOrderRepository(t),
	}
	fx.service = NewCheckoutService(CheckoutServiceParams{
		Cart:      fx.cart,
		Identity:  fx.identity,
		TxManager: fx.txManager,
		OrderRepo: fx.orders,
		Config:    newTestConfig(),
		Logger:    newTestLogger(),
	})

	return fx
}

func TestCheckoutService_Summary(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.cart.EXPECT().Items().Return(entity.Cart{{Product: newTestProduct("10.99"), Quantity: 2}})

	summary := fx.service.Summary()

	assert.True(t, decimal.RequireFromString("21.98").Equal(summary.Subtotal))
	assert.True(t, decimal.RequireFromString("2.00").Equal(summary.ServiceFee))
	assert.True(t, decimal.RequireFromString("23.98").Equal(summary.Total))
	assert.Equal(t, 2, summary.ItemCount)
}

func TestCheckoutService_PlaceOrder_PersistsAndClears(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	me := newTestUser()
	product := newTestProduct("5.00")

	fx.identity.EXPECT().CurrentUser().Return(me)
	fx.cart.EXPECT().Items().Return(entity.Cart{{Product: product, Quantity: 3}})

	txOrders := mockRepo.NewMockOrderRepository(t)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().OrderRepo().Return(txOrders)

			return fn(factory)
		})
	txOrders.EXPECT().Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.UserID == me.ID &&
			order.Status == entity.OrderPending &&
			order.Total.Equal(decimal.RequireFromString("17.00")) &&
			len(order.Items) == 1 && order.Items[0].Quantity == 3
	})).Return(nil)
	fx.cart.EXPECT().ClearCart(ctx).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Address:       " Av. Heroínas 123 ",
		PaymentMethod: entity.PaymentCard,
	})

	require.NoError(t, err)
	assert.Equal(t, "Av. Heroínas 123", order.Address)
}

func TestCheckoutService_PlaceOrder_DemoSkipsPersistence(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CurrentUser().Return(entity.DemoUser())
	fx.cart.EXPECT().Items().Return(entity.Cart{{Product: newTestProduct("1.00"), Quantity: 1}})
	fx.cart.EXPECT().ClearCart(ctx).Return(nil)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{Address: "x", PaymentMethod: entity.PaymentTransfer})

	require.NoError(t, err)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_Rejections(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.identity.EXPECT().CurrentUser().Return(newTestUser())
		fx.cart.EXPECT().Items().Return(entity.Cart{})

		_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{Address: "x", PaymentMethod: entity.PaymentCard})

		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.identity.EXPECT().CurrentUser().Return(newTestUser())

		_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{Address: "x", PaymentMethod: "cash"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
	})

	t.Run("failed transaction keeps the cart", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.identity.EXPECT().CurrentUser().Return(newTestUser())
		fx.cart.EXPECT().Items().Return(entity.Cart{{Product: newTestProduct("1.00"), Quantity: 1}})
		fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("serialization failure"))

		_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{Address: "x", PaymentMethod: entity.PaymentCard})

		require.Error(t, err)
		fx.cart.AssertNotCalled(t, "ClearCart", mock.Anything)
	})
}

func TestCheckoutService_Orders_DemoIsEmpty(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.identity.EXPECT().CurrentUser().Return(entity.DemoUser())

	orders, err := fx.service.Orders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, orders)
}
