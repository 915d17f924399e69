package dto

import (
	"time"

	"pickleball-api/modules/booking/entity"
)

// ===================== Request DTOs =====================

// QuoteRequest asks the selection engine for the achievable run and price
type QuoteRequest struct {
	CourtID        string `json:"court_id" validate:"required"`
	Date           string `json:"date" validate:"required"` // YYYY-MM-DD
	StartSlot      string `json:"start_slot" validate:"required"`
	RequestedHours int    `json:"requested_hours" validate:"min=1,max=12"`
}

// CreateBookingRequest commits a reservation for the selected run
type CreateBookingRequest struct {
	CourtID        string `json:"court_id" validate:"required"`
	Date           string `json:"date" validate:"required"` // YYYY-MM-DD
	StartSlot      string `json:"start_slot" validate:"required"`
	RequestedHours int    `json:"requested_hours" validate:"min=1,max=12"`
}

// ===================== Response DTOs =====================

// AvailabilityResponse is the per-(date, court) occupancy snapshot
type AvailabilityResponse struct {
	CourtID  string   `json:"court_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`    // the full ordered catalog
	Occupied []string `json:"occupied"` // labels with a confirmed booking
	Free     []string `json:"free"`
}

// QuoteResponse is the engine's answer: the contiguous run actually
// achievable (possibly shorter than requested) and its price
type QuoteResponse struct {
	CourtID        string   `json:"court_id"`
	Date           string   `json:"date"`
	RequestedHours int      `json:"requested_hours"`
	Run            []string `json:"run"`
	TimeSlot       string   `json:"time_slot,omitempty"` // combined label as it would be stored
	Hours          int      `json:"hours"`
	Price          int      `json:"price"`
}

// BookingResponse for a single booking
type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CourtID     string    `json:"court_id"`
	CourtName   string    `json:"court_name,omitempty"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Status      string    `json:"status"`
	Price       int       `json:"price"`
	Cancellable bool      `json:"cancellable"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToBookingResponse maps the entity, cancellable computed by the caller
func ToBookingResponse(b *entity.Booking, courtName string, cancellable bool) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		CourtID:     b.CourtID.String(),
		CourtName:   courtName,
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		Status:      string(b.Status),
		Price:       b.Price,
		Cancellable: cancellable,
		CreatedAt:   b.CreatedAt,
	}
}
