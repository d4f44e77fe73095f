package booking

import "errors"

var (
	// ErrSlotTaken is returned when the requested date/time pair is already booked
	ErrSlotTaken = errors.New("slot is no longer available")

	// ErrInvalidEmail is returned when the email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPhone is returned when the phone number is malformed
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrMissingName is returned when first or last name is empty
	ErrMissingName = errors.New("first and last name are required")

	// ErrInvalidDate is returned when the date is malformed or not strictly
	// after today
	ErrInvalidDate = errors.New("date must be a future calendar day")

	// ErrInvalidTime is returned when the time is not on the bookable grid
	ErrInvalidTime = errors.New("time is not a bookable slot")

	// ErrSubmissionInFlight is returned when a submission is already being processed
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	// ErrCorruptLedger marks stored ledger data that failed to deserialize.
	// Callers recover by starting from an empty ledger.
	ErrCorruptLedger = errors.New("stored ledger data is corrupt")
)
