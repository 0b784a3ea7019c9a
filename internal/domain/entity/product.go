package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxProductImages bounds the image list of a product.
const MaxProductImages = 3

// Product is a catalog item. A product belongs either to a store, and then the
// store's owner is its seller, or stands alone with UserID as its creator.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string     // Legacy single image, kept equal to PrimaryImage.
	Images      []string   // Ordered image URLs, the first one is the primary image.
	StoreID     *uuid.UUID // Owning store, nil for standalone products.
	Category    string
	IsActive    bool
	Stock       int
	UserID      string // Creator identity ID.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PrimaryImage returns images[0], falling back to the legacy Image field.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 && p.Images[0] != "" {
		return p.Images[0]
	}

	return p.Image
}

// SyncImages aligns the legacy Image field with the image list.
func (p *Product) SyncImages() {
	p.Image = p.PrimaryImage()
}

// SetImages replaces the image list and keeps Image in sync.
func (p *Product) SetImages(images []string) {
	p.Images = images
	p.Image = ""
	p.SyncImages()
}

// EffectiveOwner resolves the seller of p: the owner of its store when StoreID
// resolves against stores, otherwise the creator UserID.
func (p *Product) EffectiveOwner(stores []*Store) string {
	if p.StoreID != nil {
		for _, store := range stores {
			if store.ID == *p.StoreID && store.OwnerID != "" {
				return store.OwnerID
			}
		}
	}

	return p.UserID
}

// ProductUpdate carries the editable fields of a product. Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Stock       *int
	Images      []string
	StoreID     *uuid.UUID
	ClearStore  bool // Detach the product from its store.
}
