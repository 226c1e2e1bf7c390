// services/reservation_service.go
package services

import (
	"errors"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrInvalidPartySize  = errors.New("invalid_party_size")
)

// ReservationNotifier receives reservation changes; the websocket hub
// implements it for the admin panel.
type ReservationNotifier interface {
	ReservationChanged(res *entity.Reservation, event string)
}

type ReservationService struct {
	DB       *gorm.DB
	Repo     *repository.ReservationRepository
	Notifier ReservationNotifier
}

func NewReservationService(db *gorm.DB, repo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{DB: db, Repo: repo}
}

// AllowedTransition guards the reservation lifecycle:
// pending -> confirmed | declined, and pending/confirmed -> cancelled.
func AllowedTransition(from, to string) bool {
	switch to {
	case entity.ReservationConfirmed, entity.ReservationDeclined:
		return from == entity.ReservationPending
	case entity.ReservationCancelled:
		return from == entity.ReservationPending || from == entity.ReservationConfirmed
	}
	return false
}

func (s *ReservationService) Create(res *entity.Reservation) error {
	if res.PartySize < 1 {
		return ErrInvalidPartySize
	}
	res.Status = entity.ReservationPending
	if err := s.Repo.Create(res); err != nil {
		return err
	}
	s.notify(res, "created")
	return nil
}

func (s *ReservationService) List(status string) ([]entity.Reservation, error) {
	return s.Repo.List(status)
}

func (s *ReservationService) Confirm(id uint) error {
	return s.transition(id, entity.ReservationConfirmed)
}

func (s *ReservationService) Decline(id uint) error {
	return s.transition(id, entity.ReservationDeclined)
}

func (s *ReservationService) Cancel(id uint) error {
	return s.transition(id, entity.ReservationCancelled)
}

func (s *ReservationService) transition(id uint, to string) error {
	var updated *entity.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res, err := s.Repo.FindByID(id)
		if err != nil {
			return err
		}
		if !AllowedTransition(res.Status, to) {
			return ErrInvalidTransition
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, res.ID, res.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		res.Status = to
		updated = res
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(updated, to)
	return nil
}

func (s *ReservationService) notify(res *entity.Reservation, event string) {
	if s.Notifier != nil {
		s.Notifier.ReservationChanged(res, event)
	}
}
