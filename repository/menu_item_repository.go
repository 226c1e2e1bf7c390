// repository/menu_item_repository.go
package repository

import (
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_item_images.display_order ASC")
		}).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the item together with its image rows.
func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&entity.MenuItemImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuItem{}, id).Error
	})
}

func (r *MenuItemRepository) AddImage(img *entity.MenuItemImage) error {
	return r.DB.Create(img).Error
}

func (r *MenuItemRepository) FindImage(id uint) (*entity.MenuItemImage, error) {
	var img entity.MenuItemImage
	if err := r.DB.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *MenuItemRepository) DeleteImage(id uint) error {
	return r.DB.Delete(&entity.MenuItemImage{}, id).Error
}

// Reorder rewrites display_order for a category's items, first id first.
func (r *MenuItemRepository) Reorder(categoryID uint, ids []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for pos, id := range ids {
			if err := tx.Model(&entity.MenuItem{}).
				Where("id = ? AND category_id = ?", id, categoryID).
				Update("display_order", pos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
