package service

import (
	"sort"
	"time"

	"pickleball-api/modules/booking/entity"

	"github.com/google/uuid"
)

// AvailabilityIndex is the derived, non-persisted projection of confirmed
// bookings: a mapping from "{date}-{courtID}" to the set of occupied slot
// labels. It is rebuilt from the booking rows and updated incrementally by
// the commit and cancel transitions, so a slot marked occupied always
// corresponds to exactly one confirmed booking for that (date, court).
type AvailabilityIndex map[string]map[string]struct{}

// IndexKey builds the composite (date, court) key
func IndexKey(date string, courtID uuid.UUID) string {
	return date + "-" + courtID.String()
}

// BuildIndex derives the index from a set of bookings. Only confirmed rows
// contribute; rows with a malformed date or time-slot label are skipped
// silently. Never fails.
func BuildIndex(bookings []entity.Booking) AvailabilityIndex {
	idx := AvailabilityIndex{}
	for _, b := range bookings {
		if b.Status != entity.BookingStatusConfirmed {
			continue
		}
		if _, err := time.Parse("2006-01-02", b.Date); err != nil {
			continue
		}
		slots := ExpandTimeSlot(b.TimeSlot)
		if len(slots) == 0 {
			continue
		}
		idx.Occupy(b.Date, b.CourtID, slots)
	}
	return idx
}

// Occupy marks slots occupied for (date, court)
func (idx AvailabilityIndex) Occupy(date string, courtID uuid.UUID, slots []string) {
	key := IndexKey(date, courtID)
	set, ok := idx[key]
	if !ok {
		set = map[string]struct{}{}
		idx[key] = set
	}
	for _, s := range slots {
		set[s] = struct{}{}
	}
}

// Release frees slots for (date, court), leaving other bookings' slots intact
func (idx AvailabilityIndex) Release(date string, courtID uuid.UUID, slots []string) {
	key := IndexKey(date, courtID)
	set, ok := idx[key]
	if !ok {
		return
	}
	for _, s := range slots {
		delete(set, s)
	}
	if len(set) == 0 {
		delete(idx, key)
	}
}

// IsAvailable is the membership test every selection decision reduces to
func (idx AvailabilityIndex) IsAvailable(date string, courtID uuid.UUID, slot string) bool {
	set, ok := idx[IndexKey(date, courtID)]
	if !ok {
		return true
	}
	_, occupied := set[slot]
	return !occupied
}

// OccupiedSlots returns the occupied labels for (date, court) in catalog order
func (idx AvailabilityIndex) OccupiedSlots(date string, courtID uuid.UUID) []string {
	set, ok := idx[IndexKey(date, courtID)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
