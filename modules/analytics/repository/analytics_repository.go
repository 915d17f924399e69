package repository

import (
	"context"

	"pickleball-api/core/database"
	"pickleball-api/core/logger"
)

type AnalyticsRepository struct {
	db database.IDatabase
}

func NewAnalyticsRepository(db database.IDatabase) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// AnalyticsRepositoryInterface defines the aggregate reads the summary is
// built from. An empty facilityID means the whole platform.
type AnalyticsRepositoryInterface interface {
	CountBookingsByStatus(ctx context.Context, facilityID, from, to string) (map[string]int, error)
	SumConfirmedRevenue(ctx context.Context, facilityID, from, to string) (int, error)
	GetConfirmedTimeSlots(ctx context.Context, facilityID, from, to string) ([]string, error)
	CountCourts(ctx context.Context, facilityID string) (int, error)
}

type statusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// facilityFilter appends the optional facility scope. Bookings reference
// courts, courts carry the facility id.
const facilityFilter = ` AND ($3 = '' OR court_id IN (SELECT id FROM courts WHERE facility_id = $3))`

func (r *AnalyticsRepository) CountBookingsByStatus(ctx context.Context, facilityID, from, to string) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM bookings
		WHERE date >= $1 AND date <= $2` + facilityFilter + `
		GROUP BY status
	`

	var rows []statusCount
	err := r.db.SelectContext(ctx, &rows, query, from, to, facilityID)
	if err != nil {
		logger.Error("AnalyticsRepository:CountBookingsByStatus", err)
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *AnalyticsRepository) SumConfirmedRevenue(ctx context.Context, facilityID, from, to string) (int, error) {
	query := `
		SELECT COALESCE(SUM(price), 0)
		FROM bookings
		WHERE date >= $1 AND date <= $2 AND status = 'confirmed'` + facilityFilter

	var revenue int
	err := r.db.GetContext(ctx, &revenue, query, from, to, facilityID)
	if err != nil {
		logger.Error("AnalyticsRepository:SumConfirmedRevenue", err)
		return 0, err
	}
	return revenue, nil
}

// GetConfirmedTimeSlots returns the raw stored labels. Multi-hour bookings
// carry combined labels, so per-hour expansion happens in the service.
func (r *AnalyticsRepository) GetConfirmedTimeSlots(ctx context.Context, facilityID, from, to string) ([]string, error) {
	query := `
		SELECT time_slot
		FROM bookings
		WHERE date >= $1 AND date <= $2 AND status = 'confirmed'` + facilityFilter

	var slots []string
	err := r.db.SelectContext(ctx, &slots, query, from, to, facilityID)
	if err != nil {
		logger.Error("AnalyticsRepository:GetConfirmedTimeSlots", err)
		return nil, err
	}
	return slots, nil
}

func (r *AnalyticsRepository) CountCourts(ctx context.Context, facilityID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM courts WHERE ($1 = '' OR facility_id = $1)`
	err := r.db.GetContext(ctx, &count, query, facilityID)
	if err != nil {
		logger.Error("AnalyticsRepository:CountCourts", err)
		return 0, err
	}
	return count, nil
}
