package usecase

import (
	"context"

	"chaski/internal/domain/entity"
)

// CheckoutUsecase turns the cart into an order.
type CheckoutUsecase interface {
	// Summary breaks the current cart down into the amounts shown before paying.
	Summary() entity.CheckoutSummary

	// PlaceOrder persists the order and clears the cart.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// Orders lists the orders of the current identity.
	Orders(ctx context.Context) ([]*entity.Order, error)
}

// PlaceOrderInput carries the payment details.
type PlaceOrderInput struct {
	Address       string               `json:"address" validate:"required,max=255"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" validate:"required,oneof=card transfer"`
	Coupon        string               `json:"coupon" validate:"max=40"`
}
