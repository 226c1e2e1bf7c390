package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// Price is a display string, not an amount. Compound formats like
	// "€17.95 (Chicken) / €19.95 (Prawn)" are stored verbatim.
	Price string `json:"price"`

	// Allergens holds ids into the static allergen table ("1".."14");
	// Tags holds free-text labels like "Vegetarian Option".
	Allergens StringList `gorm:"type:text" json:"allergens"`
	Tags      StringList `gorm:"type:text" json:"tags"`

	// Hidden overrides everything for public viewers; the availability
	// window only applies when Hidden is false.
	Hidden        bool    `json:"hidden"`
	AvailableFrom *string `json:"availableFrom"`
	AvailableTo   *string `json:"availableTo"`

	DisplayOrder int `gorm:"index" json:"displayOrder"`

	CategoryID uint         `gorm:"index;not null" json:"categoryId"`
	Category   MenuCategory `json:"-"`

	Images []MenuItemImage `gorm:"foreignKey:MenuItemID" json:"images,omitempty"`
}
