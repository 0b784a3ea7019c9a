package impl

import (
	"context"
	"log/slog"
	"strings"

	"chaski/config"
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

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cart       usecase.CartUsecase
	identity   usecase.IdentityProvider
	txManager  repository.TransactionManager
	orders     repository.OrderRepository
	serviceFee decimal.Decimal
	logger     *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart      usecase.CartUsecase
	Identity  usecase.IdentityProvider
	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:       params.Cart,
		identity:   params.Identity,
		txManager:  params.TxManager,
		orders:     params.OrderRepo,
		serviceFee: params.Config.Checkout.ServiceFee,
		logger:     params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *checkoutService) Summary() entity.CheckoutSummary {
	return entity.NewCheckoutSummary(srv.cart.Items(), decimal.Zero, srv.serviceFee, decimal.Zero)
}

// PlaceOrder freezes the cart into a pending order and clears the cart.
// The demo identity skips persistence.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	actor := srv.identity.CurrentUser()
	if actor == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	cart := srv.cart.Items()
	if len(cart) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	summary := entity.NewCheckoutSummary(cart, decimal.Zero, srv.serviceFee, decimal.Zero)
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        actor.ID,
		Total:         summary.Total,
		Status:        entity.OrderPending,
		Address:       strings.TrimSpace(input.Address),
		PaymentMethod: input.PaymentMethod,
		CouponUsed:    strings.TrimSpace(input.Coupon),
		Items:         entity.OrderItemsFromCart(cart),
	}

	if !actor.IsDemo() {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.OrderRepo().Create(ctx, order)
		})
		if err != nil {
			srv.log(ctx).Error("Failed to place order", slog.Any("error", err), slog.String("user_id", actor.ID))

			return nil, errors.Wrap(err, "failed to place order")
		}
	}

	if err := srv.cart.ClearCart(ctx); err != nil {
		srv.log(ctx).Warn("Order placed but the cart could not be cleared", slog.Any("error", err), slog.String("order_id", order.ID.String()))
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("items", len(order.Items)),
	)

	return order, nil
}

func (srv *checkoutService) Orders(ctx context.Context) ([]*entity.Order, error) {
	actor, err := requireRemoteIdentity(srv.identity)
	if err != nil {
		if errors.Is(err, domainerrors.ErrDemoUnsupported) {
			return []*entity.Order{}, nil
		}

		return nil, err
	}

	orders, err := srv.orders.FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
