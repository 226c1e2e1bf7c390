package entity

import (
	"gorm.io/gorm"
)

// User is an admin-panel account. The public site has no user accounts.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:admin" json:"role"`
}
