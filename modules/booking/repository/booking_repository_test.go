package repository

import (
	"context"
	"testing"
	"time"

	"pickleball-api/core/database"
	"pickleball-api/modules/booking/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func newMockRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	repo := NewBookingRepository(database.NewFromSQLx(sqlx.NewDb(db, "sqlmock")))
	return repo, mock, func() { db.Close() }
}

func TestCreateReturnsGeneratedColumns(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	booking := &entity.Booking{
		UserID:   uuid.New(),
		CourtID:  uuid.New(),
		Date:     "2026-09-02",
		TimeSlot: "10:00-12:00",
		Status:   entity.BookingStatusConfirmed,
		Price:    50,
	}
	if err := repo.Create(context.Background(), booking); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if booking.ID != id {
		t.Errorf("id = %v, want %v", booking.ID, id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery("SELECT .* FROM bookings WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	booking, err := repo.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking != nil {
		t.Errorf("expected nil for missing row, got %+v", booking)
	}
}

func TestGetConfirmedByCourtDateFiltersStatus(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	courtID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "court_id", "date", "time_slot", "status", "price", "created_at", "updated_at"}).
		AddRow(uuid.New(), uuid.New(), courtID, "2026-09-02", "10:00-11:00", "confirmed", 25, time.Now(), time.Now())
	mock.ExpectQuery("SELECT .* FROM bookings").
		WithArgs(courtID, "2026-09-02", entity.BookingStatusConfirmed).
		WillReturnRows(rows)

	bookings, err := repo.GetConfirmedByCourtDate(context.Background(), courtID, "2026-09-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 1 {
		t.Errorf("got %d bookings, want 1", len(bookings))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelConfirmedOneWay(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	id := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(id, entity.BookingStatusCancelled, entity.BookingStatusConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.CancelConfirmed(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected the confirmed row to be cancelled")
	}

	// a row already cancelled is not touched
	mock.ExpectExec("UPDATE bookings").
		WithArgs(id, entity.BookingStatusCancelled, entity.BookingStatusConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.CancelConfirmed(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no transition for an already-cancelled row")
	}
}
