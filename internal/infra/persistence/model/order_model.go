package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        string          `gorm:"type:varchar(64);not null;index"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:pending"`
	Address       string          `gorm:"type:text;not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	CouponUsed    string          `gorm:"type:varchar(40)"`
	CreatedAt     time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
