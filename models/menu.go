package models

import (
	"time"

	"gorm.io/gorm"
)

// Menu is a named, dated collection of product-price pairings offered for sale
type Menu struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	ValidFrom *time.Time     `json:"valid_from"`
	ValidTo   *time.Time     `json:"valid_to"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Menu model
func (Menu) TableName() string {
	return "menus"
}

// MenuItem pairs a product with its price within a menu
type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MenuID    uint      `gorm:"not null;index" json:"menu_id"`
	Menu      Menu      `gorm:"foreignKey:MenuID" json:"-"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"-"`
	Price     float64   `gorm:"not null;check:price >= 0" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
