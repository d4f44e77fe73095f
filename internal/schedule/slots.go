// Package schedule owns the bookable time grid and availability rules.
package schedule

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date layout used for booking dates.
const DateFormat = "2006-01-02"

// TimeFormat is the time-of-day layout used for slots.
const TimeFormat = "15:04"

const (
	openingHour     = 9
	closingHour     = 18
	slotIntervalMin = 30
)

// slots is the full grid, generated once at init. 09:00 through 18:00 on a
// 30-minute grid; a treatment may start at 18:00 but no later.
var slots = generateSlots()

func generateSlots() []string {
	var out []string
	for hour := openingHour; hour <= closingHour; hour++ {
		for minute := 0; minute < 60; minute += slotIntervalMin {
			if hour == closingHour && minute > 0 {
				break
			}
			out = append(out, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return out
}

// Slots returns the full time grid in chronological order.
func Slots() []string {
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// IsSlot reports whether t is a bookable grid time.
func IsSlot(t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

// Available returns the grid minus the given taken times, preserving order.
// Taken times outside the grid are ignored.
func Available(taken []string) []string {
	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := takenSet[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// MinBookingDate returns the earliest selectable booking date relative to
// now. Same-day bookings are never allowed.
func MinBookingDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(DateFormat)
}

// ParseDate validates a calendar date string.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateFormat, date)
}
