package entity

import (
	"gorm.io/gorm"
)

// MenuType values a category can belong to. Each category lives on exactly
// one of the four menu pages.
const (
	MenuTypeALaCarte  = "aLaCarte"
	MenuTypeBreakfast = "breakfast"
	MenuTypeDrinks    = "drinks"
	MenuTypeOtherMenu = "otherMenu"
)

func ValidMenuType(t string) bool {
	switch t {
	case MenuTypeALaCarte, MenuTypeBreakfast, MenuTypeDrinks, MenuTypeOtherMenu:
		return true
	}
	return false
}

type MenuCategory struct {
	gorm.Model
	Name         string `gorm:"size:100;not null" json:"name"`
	MenuType     string `gorm:"size:20;index;not null" json:"menuType"`
	DisplayOrder int    `gorm:"index" json:"displayOrder"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}
