package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sereine-spa/booking-api/internal/booking"
	"github.com/sereine-spa/booking-api/internal/catalog"
)

type recordingSender struct {
	messages []EmailMessage
	err      error
}

func (s *recordingSender) Send(ctx context.Context, msg EmailMessage) error {
	s.messages = append(s.messages, msg)
	return s.err
}

func testBooking() booking.Booking {
	return booking.Booking{
		ID:        "b-1",
		ServiceID: "massage",
		Date:      "2025-06-01",
		Time:      "10:00",
		FirstName: "Claire",
		LastName:  "Moreau",
		Email:     "claire.moreau@example.fr",
		Phone:     "+33 6 12 34 56 78",
		Notes:     "first visit",
		CreatedAt: time.Now().UTC(),
	}
}

func TestBookingConfirmed(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, nil)

	service, err := catalog.Get("massage")
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}
	if err := svc.BookingConfirmed(context.Background(), testBooking(), service); err != nil {
		t.Fatalf("BookingConfirmed returned error: %v", err)
	}

	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.messages))
	}
	msg := sender.messages[0]
	if msg.To != "claire.moreau@example.fr" {
		t.Errorf("unexpected recipient %s", msg.To)
	}
	if msg.ToName != "Claire Moreau" {
		t.Errorf("unexpected recipient name %s", msg.ToName)
	}
	if !strings.Contains(msg.Subject, "Massage Relaxant") {
		t.Errorf("expected service name in subject, got %q", msg.Subject)
	}
	for _, want := range []string{"Massage Relaxant", "10:00", "60 minutes", "80€", "first visit"} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("expected %q in body:\n%s", want, msg.Body)
		}
	}
}

func TestBookingConfirmedSendFailure(t *testing.T) {
	sendErr := errors.New("sendgrid down")
	sender := &recordingSender{err: sendErr}
	svc := NewService(sender, nil)

	service, _ := catalog.Get("facial")
	err := svc.BookingConfirmed(context.Background(), testBooking(), service)
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected send error surfaced, got %v", err)
	}
}

func TestNewServiceDefaultsToStub(t *testing.T) {
	svc := NewService(nil, nil)
	service, _ := catalog.Get("manicure")
	if err := svc.BookingConfirmed(context.Background(), testBooking(), service); err != nil {
		t.Fatalf("stub sender should not fail: %v", err)
	}
}
