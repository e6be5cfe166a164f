package models

import (
	"time"

	"gorm.io/gorm"
)

// Order status values. The Spanish strings are part of the wire contract
// and must not change.
const (
	OrderStatusOpen          = "abierta"
	OrderStatusInPreparation = "en_preparación"
	OrderStatusServed        = "servida"
	OrderStatusPaid          = "cobrada"
	OrderStatusCanceled      = "cancelada"
)

// Order represents one dining transaction (comanda) tied to a service spot
type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ServiceSpotID uint           `gorm:"not null;index" json:"service_spot_id"`
	ServiceSpot   ServiceSpot    `gorm:"foreignKey:ServiceSpotID" json:"-"`
	SalesAreaID   uint           `gorm:"not null;index" json:"sales_area_id"`
	SalesArea     SalesArea      `gorm:"foreignKey:SalesAreaID" json:"-"`
	MenuID        uint           `gorm:"not null;index" json:"menu_id"`
	Menu          Menu           `gorm:"foreignKey:MenuID" json:"-"`
	Status        string         `gorm:"not null;default:'abierta'" json:"status"` // abierta, en_preparación, servida, cobrada, cancelada
	TotalAmount   float64        `gorm:"not null;default:0" json:"total_amount"`   // derived, subtotal + tax
	TaxAmount     float64        `gorm:"not null;default:0" json:"tax_amount"`     // derived, subtotal * tax_rate/100
	CreatedBy     uint           `gorm:"not null;index" json:"created_by"`
	Creator       User           `gorm:"foreignKey:CreatedBy" json:"-"`
	ClosedBy      *uint          `gorm:"index" json:"closed_by"` // nullable, set when order is settled or canceled
	Closer        *User          `gorm:"foreignKey:ClosedBy" json:"-"`
	ClosedAt      *time.Time     `json:"closed_at"` // nullable, set iff status is terminal
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// IsTerminal reports whether the order has reached a final state. Terminal
// orders accept no further mutation of status, items or totals.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusCanceled
}

// IsValidOrderStatus reports whether s is one of the five recognized
// order statuses
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusOpen, OrderStatusInPreparation, OrderStatusServed, OrderStatusPaid, OrderStatusCanceled:
		return true
	}
	return false
}

// ActiveOrderStatuses are the non-terminal statuses, used when deciding
// whether a spot still has a live order against it.
func ActiveOrderStatuses() []string {
	return []string{OrderStatusOpen, OrderStatusInPreparation, OrderStatusServed}
}
