package entity

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	StartsAt    time.Time  `gorm:"index" json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	ImagePath   string     `json:"imagePath"`
	Hidden      bool       `json:"hidden"`
}
