package service

import (
	"fmt"
	"strconv"
	"strings"
)

// The bookable universe is a fixed ordered catalog of one-hour slots covering
// the operating window. No finer granularity is supported.
const (
	OpeningHour = 8
	ClosingHour = 20
	SlotsPerDay = ClosingHour - OpeningHour
)

var slotCatalog = buildCatalog()

func buildCatalog() []string {
	slots := make([]string, 0, SlotsPerDay)
	for h := OpeningHour; h < ClosingHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return slots
}

// SlotCatalog returns the ordered daily slot labels
func SlotCatalog() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// slotIndex returns the catalog position of a single-hour label, -1 if the
// label is not in the catalog
func slotIndex(label string) int {
	for i, s := range slotCatalog {
		if s == label {
			return i
		}
	}
	return -1
}

// parseSlotHours extracts the start and end hour from a slot label, either a
// catalog label or a combined multi-hour range like "10:00-13:00"
func parseSlotHours(label string) (start, end int, ok bool) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok = parseHour(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok = parseHour(parts[1])
	if !ok {
		return 0, 0, false
	}
	if end <= start || start < OpeningHour || end > ClosingHour {
		return 0, 0, false
	}
	return start, end, true
}

func parseHour(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' || s[3:] != "00" {
		return 0, false
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, false
	}
	return h, true
}

// ExpandTimeSlot resolves a stored time-slot label to the constituent
// one-hour catalog labels. A combined "10:00-13:00" expands to three labels,
// a catalog label expands to itself. Malformed labels yield nil.
func ExpandTimeSlot(label string) []string {
	start, end, ok := parseSlotHours(label)
	if !ok {
		return nil
	}
	slots := make([]string, 0, end-start)
	for h := start; h < end; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return slots
}

// CombineRun collapses a contiguous run of catalog labels into the single
// stored label: one slot keeps its own label, a multi-hour run becomes
// "start-end"
func CombineRun(run []string) string {
	if len(run) == 0 {
		return ""
	}
	if len(run) == 1 {
		return run[0]
	}
	first, _, ok1 := parseSlotHours(run[0])
	_, last, ok2 := parseSlotHours(run[len(run)-1])
	if !ok1 || !ok2 {
		return ""
	}
	return fmt.Sprintf("%02d:00-%02d:00", first, last)
}

// SlotStartHour returns the starting hour of a stored time-slot label
func SlotStartHour(label string) (int, bool) {
	start, _, ok := parseSlotHours(label)
	return start, ok
}
