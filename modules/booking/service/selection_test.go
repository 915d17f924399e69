package service

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestSlotCatalog(t *testing.T) {
	catalog := SlotCatalog()
	if len(catalog) != SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", SlotsPerDay, len(catalog))
	}
	if catalog[0] != "08:00-09:00" {
		t.Errorf("first slot = %q, want 08:00-09:00", catalog[0])
	}
	if catalog[len(catalog)-1] != "19:00-20:00" {
		t.Errorf("last slot = %q, want 19:00-20:00", catalog[len(catalog)-1])
	}
}

func TestExpandTimeSlot(t *testing.T) {
	tests := []struct {
		label string
		want  []string
	}{
		{"10:00-11:00", []string{"10:00-11:00"}},
		{"10:00-13:00", []string{"10:00-11:00", "11:00-12:00", "12:00-13:00"}},
		{"garbage", nil},
		{"10:00", nil},
		{"13:00-10:00", nil},
		{"07:00-09:00", nil},
		{"19:00-21:00", nil},
	}
	for _, tt := range tests {
		got := ExpandTimeSlot(tt.label)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExpandTimeSlot(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestCombineRun(t *testing.T) {
	if got := CombineRun([]string{"10:00-11:00"}); got != "10:00-11:00" {
		t.Errorf("single slot run = %q", got)
	}
	if got := CombineRun([]string{"10:00-11:00", "11:00-12:00", "12:00-13:00"}); got != "10:00-13:00" {
		t.Errorf("combined run = %q, want 10:00-13:00", got)
	}
	if got := CombineRun(nil); got != "" {
		t.Errorf("empty run = %q, want empty", got)
	}
}

func TestBuildRunStopsAtFirstGap(t *testing.T) {
	occupied := map[string]struct{}{"11:00-12:00": {}}

	// two hours requested but the second is occupied: one-slot run, silently
	run := BuildRun("10:00-11:00", 2, occupied)
	want := []string{"10:00-11:00"}
	if !reflect.DeepEqual(run, want) {
		t.Errorf("run = %v, want %v", run, want)
	}

	// occupied starting slot yields an empty run
	if run := BuildRun("11:00-12:00", 1, occupied); len(run) != 0 {
		t.Errorf("expected empty run from occupied start, got %v", run)
	}

	// unknown starting slot yields an empty run
	if run := BuildRun("10:30-11:30", 1, nil); run != nil {
		t.Errorf("expected nil run from non-catalog start, got %v", run)
	}
}

func TestBuildRunCappedByCatalogEnd(t *testing.T) {
	run := BuildRun("19:00-20:00", 3, nil)
	if len(run) != 1 {
		t.Fatalf("expected run capped at catalog end, got %v", run)
	}
}

func TestSelectionPriceWorkedExample(t *testing.T) {
	// court at 25 per hour, two free hours from 10:00
	sel := NewSelection().
		WithCourt(uuid.New()).
		WithDate("2026-09-01").
		WithRequestedHours(2).
		SelectStart("10:00-11:00", nil)

	if len(sel.Run) != 2 {
		t.Fatalf("run = %v, want 2 slots", sel.Run)
	}
	if got := sel.Price(25); got != 50 {
		t.Errorf("price = %d, want 50", got)
	}

	// 11:00 occupied: run shrinks to one slot and price follows
	occupied := map[string]struct{}{"11:00-12:00": {}}
	sel = sel.WithRequestedHours(2).SelectStart("10:00-11:00", occupied)
	if len(sel.Run) != 1 {
		t.Fatalf("run = %v, want 1 slot", sel.Run)
	}
	if got := sel.Price(25); got != 25 {
		t.Errorf("price = %d, want 25", got)
	}
}

func TestSelectionToggleOff(t *testing.T) {
	sel := NewSelection().
		WithCourt(uuid.New()).
		WithDate("2026-09-01").
		WithRequestedHours(2).
		SelectStart("10:00-11:00", nil)
	if !sel.Active() {
		t.Fatal("expected an active selection")
	}

	// re-selecting the same starting slot clears the whole run
	sel = sel.SelectStart("10:00-11:00", nil)
	if sel.Active() {
		t.Errorf("expected toggle-off, run = %v", sel.Run)
	}

	// selecting again re-activates
	sel = sel.SelectStart("10:00-11:00", nil)
	if !sel.Active() {
		t.Error("expected re-selection to activate")
	}
}

func TestSelectionTransitionsClearRun(t *testing.T) {
	base := NewSelection().
		WithCourt(uuid.New()).
		WithDate("2026-09-01").
		WithRequestedHours(3).
		SelectStart("08:00-09:00", nil)
	if len(base.Run) != 3 {
		t.Fatalf("run = %v, want 3 slots", base.Run)
	}

	if s := base.WithCourt(uuid.New()); s.Active() {
		t.Errorf("court change kept run %v", s.Run)
	}
	if s := base.WithDate("2026-09-02"); s.Active() {
		t.Errorf("date change kept run %v", s.Run)
	}
	if s := base.WithRequestedHours(1); s.Active() {
		t.Errorf("hours change kept run %v", s.Run)
	}
}
