// repository/event_repository.go
package repository

import (
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

// FindUpcoming returns events that have not finished yet, soonest first.
// An event with no EndsAt counts as finished once StartsAt has passed the
// given instant.
func (r *EventRepository) FindUpcoming(now time.Time, includeHidden bool) ([]entity.Event, error) {
	var events []entity.Event
	q := r.DB.
		Where("(ends_at IS NOT NULL AND ends_at >= ?) OR (ends_at IS NULL AND starts_at >= ?)", now, now).
		Order("starts_at ASC")
	if !includeHidden {
		q = q.Where("hidden = ?", false)
	}
	err := q.Find(&events).Error
	return events, err
}

func (r *EventRepository) FindAll() ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.Order("starts_at DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByID(id uint) (*entity.Event, error) {
	var ev entity.Event
	if err := r.DB.First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) Create(ev *entity.Event) error {
	return r.DB.Create(ev).Error
}

func (r *EventRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Event{}).Where("id = ?", id).Updates(updates).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Event{}, id).Error
}
