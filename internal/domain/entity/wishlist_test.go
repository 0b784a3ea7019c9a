package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWishlist_ToggleIsInvolution(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	start := Wishlist{a}

	for _, id := range []uuid.UUID{a, b} {
		toggled := start.Toggle(id)
		assert.NotEqual(t, start.Contains(id), toggled.Contains(id))
		assert.Equal(t, start, toggled.Toggle(id))
	}
}

func TestWishlist_ToggleDoesNotMutateReceiver(t *testing.T) {
	a := uuid.New()
	w := Wishlist{a}

	_ = w.Toggle(a)

	assert.True(t, w.Contains(a))
}

func TestWishlist_Products(t *testing.T) {
	p1 := &Product{ID: uuid.New()}
	p2 := &Product{ID: uuid.New()}
	p3 := &Product{ID: uuid.New()}

	got := Wishlist{p3.ID, p1.ID}.Products([]*Product{p1, p2, p3})

	assert.Equal(t, []*Product{p1, p3}, got)
}
