package service

import (
	"context"
	"time"

	"pickleball-api/core/errors"
	"pickleball-api/core/logger"
	"pickleball-api/modules/analytics/dto"
	"pickleball-api/modules/analytics/repository"
	bookingentity "pickleball-api/modules/booking/entity"
	bookingservice "pickleball-api/modules/booking/service"
)

type AnalyticsServiceInterface interface {
	Summary(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, *errors.AppError)
}

type AnalyticsService struct {
	repo repository.AnalyticsRepositoryInterface
}

func NewAnalyticsService(repo repository.AnalyticsRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Summary aggregates booking activity over an inclusive date range. The
// range defaults to the last 30 days.
func (s *AnalyticsService) Summary(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, *errors.AppError) {
	from, to, days, appErr := s.resolveRange(req)
	if appErr != nil {
		return nil, appErr
	}

	counts, err := s.repo.CountBookingsByStatus(ctx, req.FacilityID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to count bookings", err)
	}

	revenue, err := s.repo.SumConfirmedRevenue(ctx, req.FacilityID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sum revenue", err)
	}

	storedSlots, err := s.repo.GetConfirmedTimeSlots(ctx, req.FacilityID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load time slots", err)
	}

	courts, err := s.repo.CountCourts(ctx, req.FacilityID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to count courts", err)
	}

	confirmed := counts[string(bookingentity.BookingStatusConfirmed)]
	cancelled := counts[string(bookingentity.BookingStatusCancelled)]
	total := confirmed + cancelled

	perSlot := map[string]int{}
	bookedHours := 0
	for _, stored := range storedSlots {
		for _, hour := range bookingservice.ExpandTimeSlot(stored) {
			perSlot[hour]++
			bookedHours++
		}
	}

	catalog := bookingservice.SlotCatalog()
	breakdown := make([]dto.SlotCount, 0, len(catalog))
	for _, slot := range catalog {
		breakdown = append(breakdown, dto.SlotCount{Slot: slot, Bookings: perSlot[slot]})
	}

	capacity := courts * len(catalog) * days
	occupancy := 0.0
	if capacity > 0 {
		occupancy = float64(bookedHours) / float64(capacity)
	}

	cancellationRate := 0.0
	if total > 0 {
		cancellationRate = float64(cancelled) / float64(total)
	}

	logger.Debug("AnalyticsService:Summary:Computed",
		"from", from,
		"to", to,
		"total", total,
		"booked_hours", bookedHours,
	)

	return &dto.SummaryResponse{
		From:              from,
		To:                to,
		TotalBookings:     total,
		CancelledBookings: cancelled,
		CancellationRate:  cancellationRate,
		Revenue:           revenue,
		BookedHours:       bookedHours,
		OccupancyRate:     occupancy,
		SlotBreakdown:     breakdown,
	}, nil
}

func (s *AnalyticsService) resolveRange(req *dto.SummaryRequest) (string, string, int, *errors.AppError) {
	const layout = "2006-01-02"

	toDate := time.Now()
	fromDate := toDate.AddDate(0, 0, -29)

	var err error
	if req.To != "" {
		toDate, err = time.Parse(layout, req.To)
		if err != nil {
			return "", "", 0, errors.NewAppError(errors.ErrInvalidInput, "invalid to date, expected YYYY-MM-DD", err)
		}
	}
	if req.From != "" {
		fromDate, err = time.Parse(layout, req.From)
		if err != nil {
			return "", "", 0, errors.NewAppError(errors.ErrInvalidInput, "invalid from date, expected YYYY-MM-DD", err)
		}
	}

	from := fromDate.Format(layout)
	to := toDate.Format(layout)
	if from > to {
		return "", "", 0, errors.NewAppError(errors.ErrInvalidInput, "from must not be after to", nil)
	}

	days := int(toDate.Sub(fromDate).Hours()/24) + 1
	return from, to, days, nil
}
