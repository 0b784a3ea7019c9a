package repository

import (
	"context"

	"chaski/internal/domain/entity"
)

// OrderRepository is the row boundary of the 'orders' and 'order_items' collections.
type OrderRepository interface {
	// Create inserts the order and its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUser returns the orders of userID, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
