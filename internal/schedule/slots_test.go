package schedule

import (
	"testing"
	"time"
)

func TestSlotsGrid(t *testing.T) {
	all := Slots()
	if len(all) != 19 {
		t.Fatalf("expected 19 slots, got %d", len(all))
	}
	if all[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", all[0])
	}
	if all[len(all)-1] != "18:00" {
		t.Fatalf("expected last slot 18:00, got %s", all[len(all)-1])
	}

	// Monotonically increasing on a 30-minute grid.
	prev, _ := time.Parse(TimeFormat, all[0])
	for _, s := range all[1:] {
		cur, err := time.Parse(TimeFormat, s)
		if err != nil {
			t.Fatalf("slot %q is not a valid time: %v", s, err)
		}
		if cur.Sub(prev) != 30*time.Minute {
			t.Fatalf("expected 30m step before %s, got %s", s, cur.Sub(prev))
		}
		prev = cur
	}

	seen := make(map[string]struct{})
	for _, s := range all {
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate slot %s", s)
		}
		seen[s] = struct{}{}
	}
}

func TestSlotsCopyIsolated(t *testing.T) {
	a := Slots()
	a[0] = "00:00"
	if b := Slots(); b[0] != "09:00" {
		t.Fatalf("grid mutated through Slots() result")
	}
}

func TestIsSlot(t *testing.T) {
	tests := []struct {
		time string
		want bool
	}{
		{"09:00", true},
		{"17:30", true},
		{"18:00", true},
		{"18:30", false},
		{"08:30", false},
		{"10:15", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSlot(tt.time); got != tt.want {
			t.Errorf("IsSlot(%q) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestAvailable(t *testing.T) {
	taken := []string{"10:00", "14:30", "23:59"}
	free := Available(taken)

	if len(free) != 17 {
		t.Fatalf("expected 17 free slots, got %d", len(free))
	}
	for _, s := range free {
		if s == "10:00" || s == "14:30" {
			t.Fatalf("taken slot %s still offered", s)
		}
	}

	// Free plus taken (restricted to the grid) must cover the whole grid.
	covered := make(map[string]struct{}, 19)
	for _, s := range free {
		covered[s] = struct{}{}
	}
	for _, s := range taken {
		if IsSlot(s) {
			covered[s] = struct{}{}
		}
	}
	if len(covered) != 19 {
		t.Fatalf("free ∪ taken covers %d slots, want 19", len(covered))
	}
}

func TestAvailableEmptyLedger(t *testing.T) {
	free := Available(nil)
	if len(free) != 19 {
		t.Fatalf("expected full grid, got %d slots", len(free))
	}
}

func TestMinBookingDate(t *testing.T) {
	now := time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)
	if got := MinBookingDate(now); got != "2025-06-01" {
		t.Fatalf("expected 2025-06-01, got %s", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-06-01"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if _, err := ParseDate("01/06/2025"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}
