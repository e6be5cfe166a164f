package models

import (
	"time"

	"gorm.io/gorm"
)

// Service spot status values. The Spanish strings are part of the wire
// contract and must not change.
const (
	SpotStatusFree      = "libre"
	SpotStatusOccupied  = "ocupado"
	SpotStatusReserved  = "reservado"
	SpotStatusOrderOpen = "pedido_abierto"
	SpotStatusPaid      = "cobrado"
)

// ServiceSpot represents a sellable seating unit (table, bar seat)
type ServiceSpot struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Capacity    int            `gorm:"not null;default:1" json:"capacity"`
	Status      string         `gorm:"not null;default:'libre'" json:"status"` // libre, ocupado, reservado, pedido_abierto, cobrado
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	SalesAreaID uint           `gorm:"not null;index" json:"sales_area_id"`
	SalesArea   SalesArea      `gorm:"foreignKey:SalesAreaID" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ServiceSpot model
func (ServiceSpot) TableName() string {
	return "service_spots"
}

// IsValidSpotStatus reports whether s is one of the recognized spot statuses
func IsValidSpotStatus(s string) bool {
	switch s {
	case SpotStatusFree, SpotStatusOccupied, SpotStatusReserved, SpotStatusOrderOpen, SpotStatusPaid:
		return true
	}
	return false
}
