package configs

import (
	"log"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu loads a starter menu the first time the app runs against an
// empty database. Never touches an existing catalog.
func SeedMenu() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := entity.MenuCategory{
		Name:     "Starters",
		MenuType: entity.MenuTypeALaCarte,
		Items: []entity.MenuItem{
			{
				Name:         "Seafood Chowder",
				Description:  "Creamy chowder of fresh fish and shellfish, served with brown bread",
				Price:        "€9.50",
				Allergens:    entity.StringList{"1", "2", "3", "5", "12", "14"},
				DisplayOrder: 0,
			},
			{
				Name:         "Garlic Mushrooms",
				Description:  "Crispy breaded mushrooms with garlic aioli",
				Price:        "€8.50",
				Allergens:    entity.StringList{"1", "4", "6"},
				Tags:         entity.StringList{"Vegetarian Option"},
				DisplayOrder: 1,
			},
		},
	}
	mains := entity.MenuCategory{
		Name:         "Mains",
		MenuType:     entity.MenuTypeALaCarte,
		DisplayOrder: 1,
		Items: []entity.MenuItem{
			{
				Name:         "Guinness Stew",
				Description:  "Slow-braised beef in Guinness with root vegetables and mash",
				Price:        "€18.95",
				Allergens:    entity.StringList{"1", "6", "11"},
				DisplayOrder: 0,
			},
			{
				Name:         "Pan-Fried Curry",
				Description:  "Fragrant curry with basmati rice and poppadom",
				Price:        "€17.95 (Chicken) / €19.95 (Prawn)",
				Allergens:    entity.StringList{"2", "6", "9"},
				DisplayOrder: 1,
			},
		},
	}
	drinks := entity.MenuCategory{
		Name:     "Draught",
		MenuType: entity.MenuTypeDrinks,
		Items: []entity.MenuItem{
			{Name: "Guinness", Price: "€5.80", Allergens: entity.StringList{"1"}},
		},
	}

	for _, cat := range []entity.MenuCategory{starters, mains, drinks} {
		c := cat
		if err := db.Create(&c).Error; err != nil {
			return err
		}
	}
	log.Println("seeded starter menu")
	return nil
}
