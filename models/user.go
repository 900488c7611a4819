package models

import (
	"gorm.io/gorm"
)

// User is a staff account. There is no self-service signup; accounts are
// seeded at startup or created through the admin surface.
type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`

	IsActive bool `gorm:"default:true" json:"is_active"`
	IsStaff  bool `gorm:"default:false" json:"is_staff"`
}
