package repository

import (
	"context"
	"database/sql"

	"pickleball-api/core/database"
	"pickleball-api/core/logger"
	"pickleball-api/modules/booking/entity"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db database.IDatabase
}

func NewBookingRepository(db database.IDatabase) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingRepositoryInterface defines the repository contract
type BookingRepositoryInterface interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error)
	GetConfirmedByCourtDate(ctx context.Context, courtID uuid.UUID, date string) ([]entity.Booking, error)
	CancelConfirmed(ctx context.Context, id uuid.UUID) (bool, error)
}

const bookingColumns = `id, user_id, court_id, date, time_slot, status, price, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (user_id, court_id, date, time_slot, status, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.GetContext(ctx, booking, query,
		booking.UserID, booking.CourtID, booking.Date, booking.TimeSlot, booking.Status, booking.Price)
	if err != nil {
		logger.Error("BookingRepository:Create", err)
		return err
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetByID", err)
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, time_slot DESC
	`

	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		logger.Error("BookingRepository:GetByUserID", err)
		return nil, err
	}
	return bookings, nil
}

// GetConfirmedByCourtDate is the authoritative read the availability index is
// derived from
func (r *BookingRepository) GetConfirmedByCourtDate(ctx context.Context, courtID uuid.UUID, date string) ([]entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE court_id = $1 AND date = $2 AND status = $3
	`

	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, courtID, date, entity.BookingStatusConfirmed)
	if err != nil {
		logger.Error("BookingRepository:GetConfirmedByCourtDate", err)
		return nil, err
	}
	return bookings, nil
}

// CancelConfirmed flips a confirmed booking to cancelled. The WHERE guard
// keeps the transition one-way: a booking already cancelled is not touched
// and the method reports false.
func (r *BookingRepository) CancelConfirmed(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`
	result, err := r.db.SQLx().ExecContext(ctx, query, id, entity.BookingStatusCancelled, entity.BookingStatusConfirmed)
	if err != nil {
		logger.Error("BookingRepository:CancelConfirmed", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("BookingRepository:CancelConfirmed - RowsAffected", err)
		return false, err
	}
	return rowsAffected > 0, nil
}
