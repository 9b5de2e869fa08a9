package models

import "time"

// ReservationStatus represents the possible states of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid reports whether the status is one of the three allowed values
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	RestaurantID    string            `json:"restaurant_id" gorm:"not null;index"`
	CustomerName    string            `json:"customer_name" gorm:"not null"`
	CustomerEmail   string            `json:"customer_email" gorm:"not null"`
	CustomerPhone   *string           `json:"customer_phone"`
	PartySize       int               `json:"party_size" gorm:"not null"`
	ReservationDate string            `json:"reservation_date" gorm:"not null;index"` // YYYY-MM-DD
	ReservationTime string            `json:"reservation_time" gorm:"not null"`       // HH:MM
	Status          ReservationStatus `json:"status" gorm:"not null;default:'pending'"`
	Notes           *string           `json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
