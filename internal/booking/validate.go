package booking

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9()+\s-]{10,}$`)
)

// Validate runs the decision procedure for a candidate booking against the
// current ledger. Checks run in a fixed order and short-circuit on the first
// failure: slot collision, then email format, then phone format. The ledger
// is only read, never mutated.
func Validate(b Booking, ledger *Ledger) error {
	if ledger.IsTaken(b.Date, b.Time) {
		return ErrSlotTaken
	}
	if !emailPattern.MatchString(b.Email) {
		return ErrInvalidEmail
	}
	if !phonePattern.MatchString(b.Phone) {
		return ErrInvalidPhone
	}
	return nil
}
