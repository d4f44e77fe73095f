package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/sereine-spa/booking-api/pkg/logging"
)

// Ledger is the complete collection of booking records, held in memory and
// written through to the store on every append. It owns the invariant that
// no two bookings share a (date, time) pair.
type Ledger struct {
	mu       sync.RWMutex
	store    Store
	bookings []Booking
	logger   *logging.Logger
}

// Open loads the ledger from the store. Absent or corrupt store contents are
// recovered by starting empty; a read failure is never surfaced past here.
func Open(ctx context.Context, store Store, logger *logging.Logger) *Ledger {
	if store == nil {
		panic("booking: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	bookings, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrCorruptLedger) {
			logger.Warn("stored ledger is corrupt, starting empty", "error", err)
		} else {
			logger.Warn("failed to load ledger, starting empty", "error", err)
		}
		bookings = nil
	}

	logger.Info("ledger opened", "bookings", len(bookings))
	return &Ledger{store: store, bookings: bookings, logger: logger}
}

// Append adds a booking and writes the new list through to the store. The
// record becomes visible in memory only after the store write succeeds, so a
// failed save leaves the ledger unchanged.
func (l *Ledger) Append(ctx context.Context, b Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.bookings {
		if existing.Date == b.Date && existing.Time == b.Time {
			return ErrSlotTaken
		}
	}

	next := make([]Booking, len(l.bookings), len(l.bookings)+1)
	copy(next, l.bookings)
	next = append(next, b)

	if err := l.store.Save(ctx, next); err != nil {
		return err
	}
	l.bookings = next
	return nil
}

// IsTaken reports whether a booking already occupies the date/time pair.
func (l *Ledger) IsTaken(date, time string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, b := range l.bookings {
		if b.Date == date && b.Time == time {
			return true
		}
	}
	return false
}

// TimesOn returns the times of all bookings on the given date.
func (l *Ledger) TimesOn(date string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var times []string
	for _, b := range l.bookings {
		if b.Date == date {
			times = append(times, b.Time)
		}
	}
	return times
}

// All returns a copy of every booking record.
func (l *Ledger) All() []Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// Len returns the number of booking records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}

// Clear erases all booking records from memory and the store. Administrative
// operation, not part of the booking flow.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Clear(ctx); err != nil {
		return err
	}
	l.bookings = nil
	l.logger.Info("all bookings cleared")
	return nil
}
