// repository/reservation_repository.go
package repository

import (
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// List returns reservations, optionally restricted to one status,
// soonest booking first.
func (r *ReservationRepository) List(status string) ([]entity.Reservation, error) {
	var out []entity.Reservation
	q := r.DB.Order("reserved_for ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips status only when the row still holds the expected
// from status; the affected-row count tells the caller whether it won.
func (r *ReservationRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Reservation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
