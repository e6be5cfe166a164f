package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a staff member (waiter, admin, support)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;not null" json:"username"`
	FullName  string         `json:"full_name"`
	Role      string         `gorm:"not null;default:'dependiente'" json:"role"` // dependiente, administrador, soporte
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
