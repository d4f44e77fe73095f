package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sereine-spa/booking-api/internal/booking"
	"github.com/sereine-spa/booking-api/internal/catalog"
	"github.com/sereine-spa/booking-api/internal/schedule"
	"github.com/sereine-spa/booking-api/pkg/logging"
)

// Service formats and sends the booking confirmation email. The email is
// cosmetic: delivery failures are reported to the caller for logging but
// never block a booking.
type Service struct {
	email  EmailSender
	logger *logging.Logger
}

// NewService creates a notification service.
func NewService(email EmailSender, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if email == nil {
		email = NewStubEmailSender(logger)
	}
	return &Service{email: email, logger: logger}
}

// BookingConfirmed sends the confirmation email for a new booking.
func (s *Service) BookingConfirmed(ctx context.Context, b booking.Booking, svc catalog.Service) error {
	msg := EmailMessage{
		To:      b.Email,
		ToName:  b.FirstName + " " + b.LastName,
		Subject: "Confirmation de votre réservation — " + svc.Name,
		Body:    confirmationBody(b, svc),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: booking confirmation: %w", err)
	}
	return nil
}

func confirmationBody(b booking.Booking, svc catalog.Service) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bonjour %s,\n\n", b.FirstName)
	sb.WriteString("Votre réservation est confirmée.\n\n")
	fmt.Fprintf(&sb, "Service : %s\n", svc.Name)
	fmt.Fprintf(&sb, "Date : %s\n", formatDate(b.Date))
	fmt.Fprintf(&sb, "Heure : %s\n", b.Time)
	fmt.Fprintf(&sb, "Durée : %d minutes\n", svc.Duration)
	fmt.Fprintf(&sb, "Prix : %d€\n", svc.Price)
	if b.Notes != "" {
		fmt.Fprintf(&sb, "Notes : %s\n", b.Notes)
	}
	sb.WriteString("\nÀ très bientôt,\nSereine Spa")
	return sb.String()
}

func formatDate(date string) string {
	t, err := time.Parse(schedule.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
