package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCart_TotalAndItemCount(t *testing.T) {
	product := &Product{ID: uuid.New(), Price: decimal.RequireFromString("10.99")}
	cart := Cart{{Product: product, Quantity: 2}}

	assert.True(t, decimal.RequireFromString("21.98").Equal(cart.Total()))
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_EmptyTotalIsZero(t *testing.T) {
	var cart Cart

	assert.True(t, cart.Total().IsZero())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCart_TotalSkipsLinesWithoutProduct(t *testing.T) {
	cart := Cart{
		{Product: nil, Quantity: 3},
		{Product: &Product{Price: decimal.NewFromInt(4)}, Quantity: 1},
	}

	assert.Equal(t, "4", cart.Total().String())
	assert.Equal(t, 4, cart.ItemCount())
}

func TestCart_IndexOf(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	cart := Cart{{Product: &Product{ID: a}, Quantity: 1}}

	assert.Equal(t, 0, cart.IndexOf(a))
	assert.Equal(t, -1, cart.IndexOf(b))
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		in, out int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{7, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, ClampQuantity(tt.in), "quantity %d", tt.in)
	}
}
