package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a console user account.
type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"size:200;not null" json:"name"`
	Username        string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email           string         `gorm:"size:255" json:"email"`
	Password        string         `gorm:"size:255" json:"-"` // bcrypt hash
	Role            string         `gorm:"size:50;default:USER" json:"role"`     // ADMIN, MANAGER, USER
	Status          string         `gorm:"size:20;default:active" json:"status"` // active, inactive
	Phone           string         `gorm:"size:50" json:"phone,omitempty"`
	Department      string         `gorm:"size:100" json:"department,omitempty"`
	ProfileImageURL string         `gorm:"size:500" json:"profileImageUrl,omitempty"`
	LastLogin       *time.Time     `json:"lastLogin,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
