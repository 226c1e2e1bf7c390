// repository/menu_category_repository.go
package repository

import (
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"gorm.io/gorm"
)

type MenuCategoryRepository struct {
	DB *gorm.DB
}

func NewMenuCategoryRepository(db *gorm.DB) *MenuCategoryRepository {
	return &MenuCategoryRepository{DB: db}
}

// orderedItems preloads a category's items (with images) in display order.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("menu_items.display_order ASC, menu_items.id ASC")
}

// FindByMenuType returns one menu page's categories with all their items,
// category then item display order. Availability filtering happens in the
// service, not here.
func (r *MenuCategoryRepository) FindByMenuType(menuType string) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.
		Preload("Items", orderedItems).
		Preload("Items.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_item_images.display_order ASC")
		}).
		Where("menu_type = ?", menuType).
		Order("display_order ASC, id ASC").
		Find(&cats).Error
	return cats, err
}

// FindAll returns every category of every menu type, same ordering.
func (r *MenuCategoryRepository) FindAll() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.
		Preload("Items", orderedItems).
		Preload("Items.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_item_images.display_order ASC")
		}).
		Order("menu_type ASC, display_order ASC, id ASC").
		Find(&cats).Error
	return cats, err
}

func (r *MenuCategoryRepository) FindByID(id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	err := r.DB.
		Preload("Items", orderedItems).
		First(&cat, id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuCategoryRepository) Create(cat *entity.MenuCategory) error {
	return r.DB.Create(cat).Error
}

func (r *MenuCategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuCategory{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the category and its items in one transaction.
func (r *MenuCategoryRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuCategory{}, id).Error
	})
}

// Reorder rewrites display_order for the given ids, first id first.
func (r *MenuCategoryRepository) Reorder(ids []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for pos, id := range ids {
			if err := tx.Model(&entity.MenuCategory{}).
				Where("id = ?", id).
				Update("display_order", pos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
