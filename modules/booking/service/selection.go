package service

import (
	"github.com/google/uuid"
)

// Selection is the explicit slot-selection state. A selection is active only
// when Run is non-empty, and a non-empty run always carries the court, date
// and requested hours it was built against, so the invalid combinations a
// loose bundle of flags would allow cannot be represented.
type Selection struct {
	CourtID        uuid.UUID `json:"court_id"`
	Date           string    `json:"date"`
	RequestedHours int       `json:"requested_hours"`
	Run            []string  `json:"run"`
}

// NewSelection returns the empty selection
func NewSelection() Selection {
	return Selection{RequestedHours: 1}
}

// Active reports whether a run is currently selected
func (s Selection) Active() bool {
	return len(s.Run) > 0
}

// WithCourt switches the active court and drops any existing run
func (s Selection) WithCourt(courtID uuid.UUID) Selection {
	s.CourtID = courtID
	s.Run = nil
	return s
}

// WithDate switches the active date and drops any existing run
func (s Selection) WithDate(date string) Selection {
	s.Date = date
	s.Run = nil
	return s
}

// WithRequestedHours changes the desired duration. Any existing run is
// cleared, there is no carry-over to the new duration.
func (s Selection) WithRequestedHours(hours int) Selection {
	if hours < 1 {
		hours = 1
	}
	s.RequestedHours = hours
	s.Run = nil
	return s
}

// SelectStart builds the run beginning at startSlot against the given
// occupancy. Re-selecting the current starting slot toggles the whole
// selection off.
func (s Selection) SelectStart(startSlot string, occupied map[string]struct{}) Selection {
	if s.Active() && s.Run[0] == startSlot {
		s.Run = nil
		return s
	}
	s.Run = BuildRun(startSlot, s.RequestedHours, occupied)
	return s
}

// Price is hourly rate times slots in the run, whole hours only
func (s Selection) Price(hourlyRate int) int {
	return hourlyRate * len(s.Run)
}

// BuildRun walks forward through the slot catalog from startSlot, taking each
// slot while it is inside the catalog, free, and still within requestedHours.
// The walk stops at the first gap, so a shorter contiguous run than requested
// is returned silently rather than an error. An occupied or unknown starting
// slot yields an empty run.
func BuildRun(startSlot string, requestedHours int, occupied map[string]struct{}) []string {
	start := slotIndex(startSlot)
	if start < 0 || requestedHours < 1 {
		return nil
	}
	run := make([]string, 0, requestedHours)
	for i := start; i < len(slotCatalog) && len(run) < requestedHours; i++ {
		if _, busy := occupied[slotCatalog[i]]; busy {
			break
		}
		run = append(run, slotCatalog[i])
	}
	return run
}
