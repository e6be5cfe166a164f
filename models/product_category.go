package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductCategory groups products for display (starters, drinks, desserts)
type ProductCategory struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ProductCategory model
func (ProductCategory) TableName() string {
	return "product_categories"
}
