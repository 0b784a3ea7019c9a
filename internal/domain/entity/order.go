package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentMethod is how the buyer pays.
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCard || m == PaymentTransfer
}

// Order is a placed purchase.
type Order struct {
	ID            uuid.UUID
	UserID        string
	Total         decimal.Decimal
	Status        OrderStatus
	Address       string
	PaymentMethod PaymentMethod
	CouponUsed    string
	Items         []OrderItem
	CreatedAt     time.Time
}

// OrderItem is a purchased line, with the price frozen at checkout time.
type OrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// CheckoutSummary breaks a cart total down into the amounts shown before paying.
type CheckoutSummary struct {
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	ServiceFee decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
	ItemCount  int
}

// NewCheckoutSummary computes subtotal + shipping + fee - discount over cart.
func NewCheckoutSummary(cart Cart, shipping, fee, discount decimal.Decimal) CheckoutSummary {
	subtotal := cart.Total()

	return CheckoutSummary{
		Subtotal:   subtotal,
		Shipping:   shipping,
		ServiceFee: fee,
		Discount:   discount,
		Total:      subtotal.Add(shipping).Add(fee).Sub(discount),
		ItemCount:  cart.ItemCount(),
	}
}

// OrderItemsFromCart freezes the cart lines into order items.
func OrderItemsFromCart(cart Cart) []OrderItem {
	items := make([]OrderItem, 0, len(cart))
	for _, line := range cart {
		if line.Product == nil {
			continue
		}
		items = append(items, OrderItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}

	return items
}
