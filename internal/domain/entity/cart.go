package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line of a cart, keyed by product.
type CartItem struct {
	Product  *Product
	Quantity int
}

// Subtotal returns price times quantity for the line.
func (i CartItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}

	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the set of lines of one identity.
type Cart []CartItem

// Total returns the sum of price times quantity over every line.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ItemCount returns the sum of quantities.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}

	return count
}

// IndexOf returns the position of the line holding productID, or -1.
func (c Cart) IndexOf(productID uuid.UUID) int {
	for i, item := range c {
		if item.Product != nil && item.Product.ID == productID {
			return i
		}
	}

	return -1
}

// Clone returns a copy of the cart lines.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)

	return out
}

// ClampQuantity bounds a requested quantity to the minimum of one unit.
func ClampQuantity(quantity int) int {
	return max(quantity, 1)
}
