package entity

import (
	"gorm.io/gorm"
)

type MenuItemImage struct {
	gorm.Model
	// Path is either a storage-relative filename under the upload dir or a
	// full external URL; utils.ResolveImageURL handles both.
	Path         string `gorm:"not null" json:"path"`
	DisplayOrder int    `json:"displayOrder"`

	MenuItemID uint     `gorm:"index;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
