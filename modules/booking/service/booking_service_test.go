package service

import (
	"context"
	"testing"
	"time"

	"pickleball-api/core/errors"
	"pickleball-api/core/queue"
	"pickleball-api/modules/booking/dto"
	"pickleball-api/modules/booking/entity"
	facilityentity "pickleball-api/modules/facility/entity"
	userentity "pickleball-api/modules/user/entity"

	"github.com/google/uuid"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (r *fakeBookingRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetConfirmedByCourtDate(ctx context.Context, courtID uuid.UUID, date string) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range r.bookings {
		if b.CourtID == courtID && b.Date == date && b.Status == entity.BookingStatusConfirmed {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CancelConfirmed(ctx context.Context, id uuid.UUID) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != entity.BookingStatusConfirmed {
		return false, nil
	}
	b.Status = entity.BookingStatusCancelled
	return true, nil
}

type fakeCourtRepo struct {
	courts map[uuid.UUID]*facilityentity.Court
}

func (r *fakeCourtRepo) GetAllCourts(ctx context.Context) ([]facilityentity.Court, error) {
	var out []facilityentity.Court
	for _, c := range r.courts {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourtRepo) GetCourtByID(ctx context.Context, id uuid.UUID) (*facilityentity.Court, error) {
	c, ok := r.courts[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCourtRepo) CreateCourt(ctx context.Context, c *facilityentity.Court) error { return nil }
func (r *fakeCourtRepo) UpdateCourt(ctx context.Context, c *facilityentity.Court) error { return nil }
func (r *fakeCourtRepo) DeleteCourt(ctx context.Context, id uuid.UUID) error            { return nil }

type fakeUserRepo struct {
	appended []uuid.UUID
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*userentity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) UpdateProfile(ctx context.Context, u *userentity.User) error { return nil }
func (r *fakeUserRepo) AppendBookingID(ctx context.Context, userID, bookingID uuid.UUID) error {
	r.appended = append(r.appended, bookingID)
	return nil
}

type fakeCache struct {
	sets     map[string][]string
	snapshot map[string]bool
	setErr   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{sets: map[string][]string{}, snapshot: map[string]bool{}}
}

func (c *fakeCache) key(date, courtID string) string { return date + ":" + courtID }

func (c *fakeCache) GetOccupiedSlots(ctx context.Context, date, courtID string) ([]string, bool, error) {
	k := c.key(date, courtID)
	if !c.snapshot[k] {
		return nil, false, nil
	}
	return c.sets[k], true, nil
}

func (c *fakeCache) SetOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error {
	if c.setErr != nil {
		return c.setErr
	}
	k := c.key(date, courtID)
	c.snapshot[k] = true
	c.sets[k] = append([]string(nil), slots...)
	return nil
}

// AddOccupiedSlots only touches an existing snapshot, like the redis cache
func (c *fakeCache) AddOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error {
	k := c.key(date, courtID)
	if !c.snapshot[k] {
		return nil
	}
	c.sets[k] = append(c.sets[k], slots...)
	return nil
}

func (c *fakeCache) RemoveOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error {
	k := c.key(date, courtID)
	remove := map[string]bool{}
	for _, s := range slots {
		remove[s] = true
	}
	var kept []string
	for _, s := range c.sets[k] {
		if !remove[s] {
			kept = append(kept, s)
		}
	}
	c.sets[k] = kept
	return nil
}

func (c *fakeCache) DeleteAvailabilityKeys(ctx context.Context, beforeDate string) (int, error) {
	return 0, nil
}

type fakeQueue struct {
	tasks    []string
	payloads []queue.BookingTaskPayload
}

func (q *fakeQueue) Enqueue(ctx context.Context, taskType string, payload queue.BookingTaskPayload) error {
	q.tasks = append(q.tasks, taskType)
	q.payloads = append(q.payloads, payload)
	return nil
}

func newTestService(rate int) (*BookingService, *fakeBookingRepo, *fakeCache, *fakeQueue, uuid.UUID) {
	courtID := uuid.New()
	repo := newFakeBookingRepo()
	courts := &fakeCourtRepo{courts: map[uuid.UUID]*facilityentity.Court{}}
	court := &facilityentity.Court{Name: "Court 1", HourlyRate: rate}
	court.ID = courtID
	courts.courts[courtID] = court
	cache := newFakeCache()
	q := &fakeQueue{}

	svc := NewBookingService(repo, courts, &fakeUserRepo{}, cache, q)
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	}
	return svc, repo, cache, q, courtID
}

func TestCreateBookingCombinedRow(t *testing.T) {
	svc, repo, _, q, courtID := newTestService(25)
	userID := uuid.New()

	resp, appErr := svc.Create(context.Background(), userID, &dto.CreateBookingRequest{
		CourtID:        courtID.String(),
		Date:           "2026-09-02",
		StartSlot:      "10:00-11:00",
		RequestedHours: 3,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if resp.TimeSlot != "10:00-13:00" {
		t.Errorf("time_slot = %q, want combined 10:00-13:00", resp.TimeSlot)
	}
	if resp.Price != 75 {
		t.Errorf("price = %d, want 75", resp.Price)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected exactly one stored row, got %d", len(repo.bookings))
	}
	if len(q.tasks) != 1 || q.tasks[0] != "booking:confirmed" {
		t.Errorf("queue tasks = %v", q.tasks)
	}
}

func TestCreateBookingShrinksToFreeRun(t *testing.T) {
	svc, _, _, _, courtID := newTestService(25)
	userID := uuid.New()

	// occupy 12:00 so a 3-hour request from 10:00 yields two hours
	_, appErr := svc.Create(context.Background(), userID, &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "12:00-13:00", RequestedHours: 1,
	})
	if appErr != nil {
		t.Fatalf("setup booking failed: %v", appErr)
	}

	resp, appErr := svc.Create(context.Background(), userID, &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "10:00-11:00", RequestedHours: 3,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.TimeSlot != "10:00-12:00" || resp.Price != 50 {
		t.Errorf("got %q at %d, want 10:00-12:00 at 50", resp.TimeSlot, resp.Price)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	svc, _, cache, _, courtID := newTestService(25)
	userID := uuid.New()

	_, appErr := svc.Create(context.Background(), userID, &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "10:00-11:00", RequestedHours: 1,
	})
	if appErr != nil {
		t.Fatalf("setup booking failed: %v", appErr)
	}

	// a stale cache claiming the slot is free must not defeat the check
	_ = cache.SetOccupiedSlots(context.Background(), "2026-09-02", courtID.String(), nil)

	_, appErr = svc.Create(context.Background(), uuid.New(), &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "10:00-11:00", RequestedHours: 1,
	})
	if appErr == nil || appErr.Code != errors.ErrSlotUnavailable {
		t.Fatalf("expected ErrSlotUnavailable, got %v", appErr)
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	svc, _, _, _, courtID := newTestService(25)

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-08-31", StartSlot: "10:00-11:00", RequestedHours: 1,
	})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for past date, got %v", appErr)
	}
}

func TestQuoteDoesNotPersist(t *testing.T) {
	svc, repo, _, _, courtID := newTestService(30)

	resp, appErr := svc.Quote(context.Background(), &dto.QuoteRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "08:00-09:00", RequestedHours: 2,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Price != 60 || resp.Hours != 2 {
		t.Errorf("quote = %d for %d hours, want 60 for 2", resp.Price, resp.Hours)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("quote persisted %d rows", len(repo.bookings))
	}
}

func TestCancelReleasesOwnSlots(t *testing.T) {
	svc, repo, cache, q, courtID := newTestService(25)
	userID := uuid.New()

	resp, appErr := svc.Create(context.Background(), userID, &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "10:00-11:00", RequestedHours: 2,
	})
	if appErr != nil {
		t.Fatalf("setup booking failed: %v", appErr)
	}
	bookingID, _ := uuid.Parse(resp.ID)

	cancelled, appErr := svc.Cancel(context.Background(), userID, bookingID)
	if appErr != nil {
		t.Fatalf("cancel failed: %v", appErr)
	}
	if cancelled.Status != string(entity.BookingStatusCancelled) {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}
	if repo.bookings[bookingID].Status != entity.BookingStatusCancelled {
		t.Error("stored row not cancelled")
	}
	if slots := cache.sets["2026-09-02:"+courtID.String()]; len(slots) != 0 {
		t.Errorf("cache still holds %v after cancel", slots)
	}
	if len(q.tasks) != 2 || q.tasks[1] != "booking:cancelled" {
		t.Errorf("queue tasks = %v", q.tasks)
	}
	if q.payloads[1].CourtName != "Court 1" {
		t.Errorf("cancel payload court name = %q, want Court 1", q.payloads[1].CourtName)
	}

	// second cancel hits the one-way guard
	_, appErr = svc.Cancel(context.Background(), userID, bookingID)
	if appErr == nil || appErr.Code != errors.ErrBookingNotCancellable {
		t.Fatalf("expected ErrBookingNotCancellable, got %v", appErr)
	}
}

func TestCancelRefusedForOtherUser(t *testing.T) {
	svc, _, _, _, courtID := newTestService(25)
	owner := uuid.New()

	resp, appErr := svc.Create(context.Background(), owner, &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "10:00-11:00", RequestedHours: 1,
	})
	if appErr != nil {
		t.Fatalf("setup booking failed: %v", appErr)
	}
	bookingID, _ := uuid.Parse(resp.ID)

	_, appErr = svc.Cancel(context.Background(), uuid.New(), bookingID)
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", appErr)
	}
}

func TestCancelRefusedAfterStart(t *testing.T) {
	svc, repo, _, _, courtID := newTestService(25)
	userID := uuid.New()

	// booked for today at 08:00, clock reads 09:30
	booking := &entity.Booking{
		UserID:   userID,
		CourtID:  courtID,
		Date:     "2026-09-01",
		TimeSlot: "08:00-09:00",
		Status:   entity.BookingStatusConfirmed,
		Price:    25,
	}
	_ = repo.Create(context.Background(), booking)

	_, appErr := svc.Cancel(context.Background(), userID, booking.ID)
	if appErr == nil || appErr.Code != errors.ErrBookingNotCancellable {
		t.Fatalf("expected ErrBookingNotCancellable for started booking, got %v", appErr)
	}

	// a later slot today is still cancellable
	later := &entity.Booking{
		UserID:   userID,
		CourtID:  courtID,
		Date:     "2026-09-01",
		TimeSlot: "18:00-19:00",
		Status:   entity.BookingStatusConfirmed,
		Price:    25,
	}
	_ = repo.Create(context.Background(), later)
	if _, appErr := svc.Cancel(context.Background(), userID, later.ID); appErr != nil {
		t.Fatalf("future booking today should cancel, got %v", appErr)
	}
}

func TestGetAvailabilityServedFromCache(t *testing.T) {
	svc, repo, cache, _, courtID := newTestService(25)

	_ = cache.SetOccupiedSlots(context.Background(), "2026-09-02", courtID.String(), []string{"10:00-11:00"})
	// a row the cache does not know about, to prove the cache was used
	_ = repo.Create(context.Background(), &entity.Booking{
		UserID: uuid.New(), CourtID: courtID, Date: "2026-09-02",
		TimeSlot: "15:00-16:00", Status: entity.BookingStatusConfirmed,
	})

	resp, appErr := svc.GetAvailability(context.Background(), courtID, "2026-09-02")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(resp.Occupied) != 1 || resp.Occupied[0] != "10:00-11:00" {
		t.Errorf("occupied = %v, want cached snapshot only", resp.Occupied)
	}
	if len(resp.Slots) != SlotsPerDay || len(resp.Free) != SlotsPerDay-1 {
		t.Errorf("slots/free = %d/%d", len(resp.Slots), len(resp.Free))
	}
}

func TestCreateDoesNotFabricateExpiredSnapshot(t *testing.T) {
	svc, _, cache, _, courtID := newTestService(25)
	userID := uuid.New()
	k := "2026-09-02:" + courtID.String()

	_, appErr := svc.Create(context.Background(), userID, &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "10:00-11:00", RequestedHours: 1,
	})
	if appErr != nil {
		t.Fatalf("setup booking failed: %v", appErr)
	}

	// snapshot expires, and the rewrite during the next commit fails too; the
	// incremental add must not resurrect the key as a partial snapshot
	delete(cache.snapshot, k)
	delete(cache.sets, k)
	cache.setErr = context.DeadlineExceeded

	_, appErr = svc.Create(context.Background(), userID, &dto.CreateBookingRequest{
		CourtID: courtID.String(), Date: "2026-09-02", StartSlot: "14:00-15:00", RequestedHours: 1,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if cache.snapshot[k] || len(cache.sets[k]) != 0 {
		t.Errorf("partial snapshot fabricated: present=%v slots=%v", cache.snapshot[k], cache.sets[k])
	}

	// once the cache recovers, readers rebuild the full picture from the rows
	cache.setErr = nil
	resp, appErr := svc.GetAvailability(context.Background(), courtID, "2026-09-02")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(resp.Occupied) != 2 {
		t.Errorf("occupied = %v, want both bookings", resp.Occupied)
	}
}

func TestGetAvailabilityRebuildsOnMiss(t *testing.T) {
	svc, repo, cache, _, courtID := newTestService(25)

	_ = repo.Create(context.Background(), &entity.Booking{
		UserID: uuid.New(), CourtID: courtID, Date: "2026-09-02",
		TimeSlot: "10:00-12:00", Status: entity.BookingStatusConfirmed,
	})

	resp, appErr := svc.GetAvailability(context.Background(), courtID, "2026-09-02")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(resp.Occupied) != 2 {
		t.Errorf("occupied = %v, want the two expanded hours", resp.Occupied)
	}
	if !cache.snapshot["2026-09-02:"+courtID.String()] {
		t.Error("expected the rebuilt snapshot to repopulate the cache")
	}
}
