package models

import (
	"time"

	"gorm.io/gorm"
)

// Order item status values. The Spanish strings are part of the wire
// contract and must not change.
const (
	ItemStatusPending       = "pendiente"
	ItemStatusInPreparation = "en_preparación"
	ItemStatusReady         = "listo"
	ItemStatusServed        = "servido"
	ItemStatusCanceled      = "cancelado"
)

// OrderItem represents one product line within an order. UnitPrice is a
// snapshot of the product price at add-time, never a live reference.
type OrderItem struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	OrderID    uint           `gorm:"not null;index" json:"order_id"`
	Order      Order          `gorm:"foreignKey:OrderID" json:"-"`
	ProductID  uint           `gorm:"not null;index" json:"product_id"`
	Product    Product        `gorm:"foreignKey:ProductID" json:"-"`
	Quantity   int            `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice  float64        `gorm:"not null;check:unit_price >= 0" json:"unit_price"`
	TotalPrice float64        `gorm:"not null" json:"total_price"` // derived, quantity * unit_price
	Notes      *string        `json:"notes"`
	Status     string         `gorm:"not null;default:'pendiente'" json:"status"` // pendiente, en_preparación, listo, servido, cancelado
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// IsValidItemStatus reports whether s is one of the recognized item statuses
func IsValidItemStatus(s string) bool {
	switch s {
	case ItemStatusPending, ItemStatusInPreparation, ItemStatusReady, ItemStatusServed, ItemStatusCanceled:
		return true
	}
	return false
}
