package service

import (
	"context"
	"time"

	"pickleball-api/core/cache"
	"pickleball-api/core/constants"
	"pickleball-api/core/errors"
	"pickleball-api/core/logger"
	"pickleball-api/core/queue"
	"pickleball-api/modules/booking/dto"
	"pickleball-api/modules/booking/entity"
	"pickleball-api/modules/booking/repository"
	facilityrepo "pickleball-api/modules/facility/repository"
	userrepo "pickleball-api/modules/user/repository"

	"github.com/google/uuid"
)

type BookingServiceInterface interface {
	GetAvailability(ctx context.Context, courtID uuid.UUID, date string) (*dto.AvailabilityResponse, *errors.AppError)
	Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, *errors.AppError)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, *errors.AppError)
	GetMyBookings(ctx context.Context, userID uuid.UUID) ([]dto.BookingResponse, *errors.AppError)
	Cancel(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (*dto.BookingResponse, *errors.AppError)
}

type BookingService struct {
	repo   repository.BookingRepositoryInterface
	courts facilityrepo.FacilityRepositoryInterface
	users  userrepo.UserRepositoryInterface
	cache  cache.ICache
	queue  queue.IQueue
	now    func() time.Time
}

func NewBookingService(
	repo repository.BookingRepositoryInterface,
	courts facilityrepo.FacilityRepositoryInterface,
	users userrepo.UserRepositoryInterface,
	c cache.ICache,
	q queue.IQueue,
) *BookingService {
	return &BookingService{
		repo:   repo,
		courts: courts,
		users:  users,
		cache:  c,
		queue:  q,
		now:    time.Now,
	}
}

// GetAvailability returns the occupancy snapshot for (date, court). It is
// served from the cached availability index when present and falls back to
// deriving the index from the confirmed booking rows, repopulating the cache.
func (s *BookingService) GetAvailability(ctx context.Context, courtID uuid.UUID, date string) (*dto.AvailabilityResponse, *errors.AppError) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", err)
	}

	occupied, appErr := s.occupiedSlots(ctx, courtID, date, false)
	if appErr != nil {
		return nil, appErr
	}

	catalog := SlotCatalog()
	occupiedList := make([]string, 0, len(occupied))
	free := make([]string, 0, len(catalog))
	for _, slot := range catalog {
		if _, busy := occupied[slot]; busy {
			occupiedList = append(occupiedList, slot)
		} else {
			free = append(free, slot)
		}
	}

	return &dto.AvailabilityResponse{
		CourtID:  courtID.String(),
		Date:     date,
		Slots:    catalog,
		Occupied: occupiedList,
		Free:     free,
	}, nil
}

// Quote runs the slot selection engine without committing anything: the
// longest contiguous run achievable from the starting slot, capped at the
// requested hours, and its price. A shorter run than requested is a normal
// answer, not an error.
func (s *BookingService) Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, *errors.AppError) {
	courtID, date, hours, appErr := s.validateSelection(req.CourtID, req.Date, req.StartSlot, req.RequestedHours)
	if appErr != nil {
		return nil, appErr
	}

	court, err := s.courts.GetCourtByID(ctx, courtID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load court", err)
	}
	if court == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "court not found", nil)
	}

	occupied, appErr := s.occupiedSlots(ctx, courtID, date, false)
	if appErr != nil {
		return nil, appErr
	}

	sel := NewSelection().
		WithCourt(courtID).
		WithDate(date).
		WithRequestedHours(hours).
		SelectStart(req.StartSlot, occupied)

	return &dto.QuoteResponse{
		CourtID:        courtID.String(),
		Date:           date,
		RequestedHours: hours,
		Run:            sel.Run,
		TimeSlot:       CombineRun(sel.Run),
		Hours:          len(sel.Run),
		Price:          sel.Price(court.HourlyRate),
	}, nil
}

// Create commits a reservation: one booking row spanning the whole run, a
// single-field append on the user's profile, an incremental cache update and
// a lifecycle task. The availability check runs against the booking rows, not
// the cache, so a concurrent commit of the same slot surfaces as a conflict
// to the losing caller instead of silently double-booking.
func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, *errors.AppError) {
	courtID, date, hours, appErr := s.validateSelection(req.CourtID, req.Date, req.StartSlot, req.RequestedHours)
	if appErr != nil {
		return nil, appErr
	}
	if dateBeforeToday(date, s.now()) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "cannot book a past date", nil)
	}

	court, err := s.courts.GetCourtByID(ctx, courtID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load court", err)
	}
	if court == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "court not found", nil)
	}

	occupied, appErr := s.occupiedSlots(ctx, courtID, date, true)
	if appErr != nil {
		return nil, appErr
	}

	run := BuildRun(req.StartSlot, hours, occupied)
	if len(run) == 0 {
		return nil, errors.NewAppError(errors.ErrSlotUnavailable, "the selected slot is no longer available", nil)
	}

	booking := &entity.Booking{
		UserID:   userID,
		CourtID:  courtID,
		Date:     date,
		TimeSlot: CombineRun(run),
		Status:   entity.BookingStatusConfirmed,
		Price:    court.HourlyRate * len(run),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		logger.Error("BookingService:Create:Persist:Error", "error", err, "court_id", courtID, "date", date)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save booking", err)
	}

	// second, independently-failable write: the booking stands even if the
	// profile append fails
	if err := s.users.AppendBookingID(ctx, userID, booking.ID); err != nil {
		logger.Error("BookingService:Create:AppendBookingID:Error", "error", err, "booking_id", booking.ID)
	}

	// optimistic incremental index update, no full re-derivation
	if err := s.cache.AddOccupiedSlots(ctx, date, courtID.String(), run); err != nil {
		logger.Warn("BookingService:Create:CacheUpdate:Error", "error", err, "booking_id", booking.ID)
	}

	_ = s.queue.Enqueue(ctx, constants.TaskBookingConfirmed, queue.BookingTaskPayload{
		BookingID: booking.ID.String(),
		UserID:    userID.String(),
		CourtID:   courtID.String(),
		CourtName: court.Name,
		Date:      date,
		TimeSlot:  booking.TimeSlot,
		Price:     booking.Price,
	})

	logger.Info("BookingService:Create:Success",
		"booking_id", booking.ID, "court_id", courtID, "date", date, "time_slot", booking.TimeSlot, "price", booking.Price)

	return dto.ToBookingResponse(booking, court.Name, s.isCancellable(booking)), nil
}

func (s *BookingService) GetMyBookings(ctx context.Context, userID uuid.UUID) ([]dto.BookingResponse, *errors.AppError) {
	bookings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load bookings", err)
	}

	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		out = append(out, *dto.ToBookingResponse(b, "", s.isCancellable(b)))
	}
	return out, nil
}

// Cancel flips a confirmed booking to cancelled and releases exactly its own
// slot labels from the availability index. The transition is one-way and
// refused for bookings whose start time has already passed.
func (s *BookingService) Cancel(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (*dto.BookingResponse, *errors.AppError) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load booking", err)
	}
	if booking == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "booking not found", nil)
	}
	if booking.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "booking belongs to another user", nil)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return nil, errors.NewAppError(errors.ErrBookingNotCancellable, "booking is already cancelled", nil)
	}
	if !s.isCancellable(booking) {
		return nil, errors.NewAppError(errors.ErrBookingNotCancellable, "past bookings cannot be cancelled", nil)
	}

	cancelled, err := s.repo.CancelConfirmed(ctx, bookingID)
	if err != nil {
		logger.Error("BookingService:Cancel:Persist:Error", "error", err, "booking_id", bookingID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to cancel booking", err)
	}
	if !cancelled {
		// raced with another cancel, the row is already terminal
		return nil, errors.NewAppError(errors.ErrBookingNotCancellable, "booking is already cancelled", nil)
	}
	booking.Status = entity.BookingStatusCancelled

	if slots := ExpandTimeSlot(booking.TimeSlot); len(slots) > 0 {
		if err := s.cache.RemoveOccupiedSlots(ctx, booking.Date, booking.CourtID.String(), slots); err != nil {
			logger.Warn("BookingService:Cancel:CacheUpdate:Error", "error", err, "booking_id", bookingID)
		}
	}

	// the court name rides along so the notification renders without a lookup
	courtName := ""
	if court, err := s.courts.GetCourtByID(ctx, booking.CourtID); err == nil && court != nil {
		courtName = court.Name
	}

	_ = s.queue.Enqueue(ctx, constants.TaskBookingCancelled, queue.BookingTaskPayload{
		BookingID: booking.ID.String(),
		UserID:    userID.String(),
		CourtID:   booking.CourtID.String(),
		CourtName: courtName,
		Date:      booking.Date,
		TimeSlot:  booking.TimeSlot,
		Price:     booking.Price,
	})

	logger.Info("BookingService:Cancel:Success", "booking_id", bookingID)
	return dto.ToBookingResponse(booking, courtName, false), nil
}

// occupiedSlots returns the occupied set for (date, court). The commit path
// passes authoritative=true to bypass the cache and derive from the booking
// rows, which is what makes the conflict check meaningful.
func (s *BookingService) occupiedSlots(ctx context.Context, courtID uuid.UUID, date string, authoritative bool) (map[string]struct{}, *errors.AppError) {
	if !authoritative {
		slots, hit, err := s.cache.GetOccupiedSlots(ctx, date, courtID.String())
		if err != nil {
			logger.Warn("BookingService:OccupiedSlots:CacheRead:Error", "error", err)
		} else if hit {
			return toSet(slots), nil
		}
	}

	bookings, err := s.repo.GetConfirmedByCourtDate(ctx, courtID, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load availability", err)
	}

	idx := BuildIndex(bookings)
	occupied := idx.OccupiedSlots(date, courtID)

	if err := s.cache.SetOccupiedSlots(ctx, date, courtID.String(), occupied); err != nil {
		logger.Warn("BookingService:OccupiedSlots:CacheWrite:Error", "error", err)
	}
	return toSet(occupied), nil
}

func (s *BookingService) validateSelection(courtID, date, startSlot string, hours int) (uuid.UUID, string, int, *errors.AppError) {
	id, err := uuid.Parse(courtID)
	if err != nil {
		return uuid.Nil, "", 0, errors.NewAppError(errors.ErrInvalidInput, "invalid court_id", err)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return uuid.Nil, "", 0, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", err)
	}
	if slotIndex(startSlot) < 0 {
		return uuid.Nil, "", 0, errors.NewAppError(errors.ErrInvalidInput, "start_slot is not in the slot catalog", nil)
	}
	if hours < 1 {
		hours = 1
	}
	if hours > SlotsPerDay {
		hours = SlotsPerDay
	}
	return id, date, hours, nil
}

// isCancellable reports whether a booking's start is still in the future:
// date-only comparison when the booking is not today, start-hour comparison
// when it is
func (s *BookingService) isCancellable(b *entity.Booking) bool {
	if b.Status != entity.BookingStatusConfirmed {
		return false
	}

	now := s.now()
	today := now.Format("2006-01-02")
	if b.Date != today {
		return !dateBeforeToday(b.Date, now)
	}

	startHour, ok := SlotStartHour(b.TimeSlot)
	if !ok {
		return false
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), startHour, 0, 0, 0, now.Location())
	return start.After(now)
}

func dateBeforeToday(date string, now time.Time) bool {
	return date < now.Format("2006-01-02")
}

func toSet(slots []string) map[string]struct{} {
	set := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}
	return set
}
