// repository/side_repository.go
package repository

import (
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"gorm.io/gorm"
)

type SideRepository struct {
	DB *gorm.DB
}

func NewSideRepository(db *gorm.DB) *SideRepository {
	return &SideRepository{DB: db}
}

func (r *SideRepository) FindAll(includeHidden bool) ([]entity.Side, error) {
	var sides []entity.Side
	q := r.DB.Order("display_order ASC, id ASC")
	if !includeHidden {
		q = q.Where("hidden = ?", false)
	}
	err := q.Find(&sides).Error
	return sides, err
}

func (r *SideRepository) FindByID(id uint) (*entity.Side, error) {
	var side entity.Side
	if err := r.DB.First(&side, id).Error; err != nil {
		return nil, err
	}
	return &side, nil
}

func (r *SideRepository) Create(side *entity.Side) error {
	return r.DB.Create(side).Error
}

func (r *SideRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Side{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SideRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Side{}, id).Error
}
