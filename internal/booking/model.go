// Package booking implements the spa's booking ledger: typed booking records,
// the validation pipeline, persistence, and the submission flow.
package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sereine-spa/booking-api/internal/catalog"
	"github.com/sereine-spa/booking-api/internal/schedule"
)

// Booking is a confirmed appointment record. Records are immutable once
// created; the only deletion path is a full ledger clear. JSON field names
// follow the stored record schema.
type Booking struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateBookingRequest represents the untyped form input for a new booking
type CreateBookingRequest struct {
	ServiceID string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// New converts untyped form input into a typed Booking. It checks everything
// that can be decided without the ledger: required fields, a known service,
// a parseable date strictly after today, and a grid time. Collision and
// contact-format checks belong to Validate.
func New(req CreateBookingRequest, now time.Time) (Booking, error) {
	serviceID := strings.TrimSpace(req.ServiceID)
	if _, err := catalog.Get(serviceID); err != nil {
		return Booking{}, err
	}

	date := strings.TrimSpace(req.Date)
	if _, err := schedule.ParseDate(date); err != nil {
		return Booking{}, ErrInvalidDate
	}
	// String comparison is safe for ISO dates. Strictly later than today:
	// same-day bookings are rejected.
	if date < schedule.MinBookingDate(now) {
		return Booking{}, ErrInvalidDate
	}

	slot := strings.TrimSpace(req.Time)
	if !schedule.IsSlot(slot) {
		return Booking{}, ErrInvalidTime
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return Booking{}, ErrMissingName
	}

	return Booking{
		ID:        uuid.NewString(),
		ServiceID: serviceID,
		Date:      date,
		Time:      slot,
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: now.UTC(),
	}, nil
}
