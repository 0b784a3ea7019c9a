package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Wishlist is the ordered set of product ids liked by one identity.
type Wishlist []uuid.UUID

// Contains reports whether productID is in the wishlist.
func (w Wishlist) Contains(productID uuid.UUID) bool {
	return slices.Contains(w, productID)
}

// Toggle removes productID when present and appends it otherwise.
func (w Wishlist) Toggle(productID uuid.UUID) Wishlist {
	if idx := slices.Index(w, productID); idx >= 0 {
		return slices.Delete(slices.Clone(w), idx, idx+1)
	}

	return append(slices.Clone(w), productID)
}

// Products returns the catalog entries whose id is in the wishlist, in catalog order.
func (w Wishlist) Products(catalog []*Product) []*Product {
	out := make([]*Product, 0, len(w))
	for _, product := range catalog {
		if w.Contains(product.ID) {
			out = append(out, product)
		}
	}

	return out
}
