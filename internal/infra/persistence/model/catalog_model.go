package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	Images      pq.StringArray `gorm:"type:text[]"`
	Address     string         `gorm:"type:text"`
	OwnerID     string         `gorm:"type:varchar(64);not null;index"`
	Coordinates GeoPoint
	IsActive    bool `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// ProductModel mirrors the 'products' table. Image is the legacy primary image column.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string          `gorm:"type:varchar(150);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:price > 0"`
	Image       string          `gorm:"type:text"`
	Images      pq.StringArray  `gorm:"type:text[]"`
	StoreID     *uuid.UUID      `gorm:"type:uuid;index"`
	Category    string          `gorm:"type:varchar(50);index"`
	IsActive    bool            `gorm:"not null;default:true;index"`
	Stock       int             `gorm:"not null;default:0"`
	UserID      string          `gorm:"type:varchar(64);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Store *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CartItemModel mirrors the 'cart_items' table, keyed by (user, product).
type CartItemModel struct {
	UserID    string    `gorm:"type:varchar(64);primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// WishlistItemModel mirrors the 'wishlist_items' table, keyed by (user, product).
type WishlistItemModel struct {
	UserID    string    `gorm:"type:varchar(64);primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
