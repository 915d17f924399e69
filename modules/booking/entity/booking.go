package entity

import (
	"pickleball-api/core/entity"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	// BookingStatusConfirmed is the initial state of every persisted booking
	BookingStatusConfirmed BookingStatus = "confirmed"
	// BookingStatusCancelled is terminal, there is no way back to confirmed
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one reservation of a court. Multi-hour reservations are stored
// as a single row whose TimeSlot carries the combined start-end label
// (e.g. "10:00-13:00"), not one row per hour. Bookings are never deleted,
// cancellation flips Status only.
type Booking struct {
	UserID   uuid.UUID     `db:"user_id" json:"user_id"`
	CourtID  uuid.UUID     `db:"court_id" json:"court_id"`
	Date     string        `db:"date" json:"date"` // YYYY-MM-DD, date-only granularity
	TimeSlot string        `db:"time_slot" json:"time_slot"`
	Status   BookingStatus `db:"status" json:"status"`
	Price    int           `db:"price" json:"price"`
	entity.BaseEntity
}
