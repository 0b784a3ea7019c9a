package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProduct_PrimaryImage(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected string
	}{
		{"first of images", Product{Images: []string{"a.png", "b.png"}, Image: "legacy.png"}, "a.png"},
		{"fallback to legacy image", Product{Image: "legacy.png"}, "legacy.png"},
		{"empty first entry falls back", Product{Images: []string{""}, Image: "legacy.png"}, "legacy.png"},
		{"nothing at all", Product{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.product.PrimaryImage())
		})
	}
}

func TestProduct_SetImagesKeepsLegacyInSync(t *testing.T) {
	p := &Product{Image: "old.png"}

	p.SetImages([]string{"new.png", "other.png"})
	assert.Equal(t, "new.png", p.Image)

	p.SetImages(nil)
	assert.Empty(t, p.Image)
}

func TestProduct_EffectiveOwner(t *testing.T) {
	storeID := uuid.New()
	stores := []*Store{{ID: storeID, OwnerID: "seller-1"}}

	tests := []struct {
		name     string
		product  Product
		expected string
	}{
		{"store product resolves to store owner", Product{StoreID: &storeID, UserID: "creator"}, "seller-1"},
		{"standalone product resolves to creator", Product{UserID: "creator"}, "creator"},
		{"unknown store falls back to creator", Product{StoreID: new(uuid.UUID), UserID: "creator"}, "creator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.product.EffectiveOwner(stores))
		})
	}
}
