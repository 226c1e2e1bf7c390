package entity

import (
	"gorm.io/gorm"
)

type Side struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Price        string `json:"price"`
	Hidden       bool   `json:"hidden"`
	DisplayOrder int    `gorm:"index" json:"displayOrder"`
}
