package models

import (
	"time"
)

// Establishment holds the single restaurant configuration record
type Establishment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Address      string    `json:"address"`
	TaxRate      float64   `gorm:"not null;default:0" json:"tax_rate"` // percentage, e.g. 10 for 10%
	Currency     string    `gorm:"not null;default:'EUR'" json:"currency"`
	IsConfigured bool      `gorm:"not null;default:false" json:"is_configured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Establishment model
func (Establishment) TableName() string {
	return "establishment"
}
