package models

import (
	"time"

	"gorm.io/gorm"
)

// SalesArea groups service spots (dining room, bar, terrace)
type SalesArea struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the SalesArea model
func (SalesArea) TableName() string {
	return "sales_areas"
}
