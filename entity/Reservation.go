package entity

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses. Transitions are guarded in the service layer.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationDeclined  = "declined"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	gorm.Model
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Phone       string    `json:"phone"`
	PartySize   int       `gorm:"not null" json:"partySize"`
	ReservedFor time.Time `gorm:"index;not null" json:"reservedFor"`
	Notes       string    `json:"notes"`
	Status      string    `gorm:"size:20;index;not null;default:pending" json:"status"`
}
