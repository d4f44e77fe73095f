package booking

import (
	"context"
	"errors"
	"testing"
)

func emptyLedger(t *testing.T) *Ledger {
	t.Helper()
	return Open(context.Background(), NewMemoryStore(), nil)
}

func ledgerWith(t *testing.T, bookings ...Booking) *Ledger {
	t.Helper()
	l := emptyLedger(t)
	for _, b := range bookings {
		if err := l.Append(context.Background(), b); err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}
	return l
}

func TestValidatePasses(t *testing.T) {
	b, err := New(validRequest(), testNow)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := Validate(b, emptyLedger(t)); err != nil {
		t.Fatalf("expected valid booking, got %v", err)
	}
}

func TestValidateSlotCollision(t *testing.T) {
	existing, _ := New(validRequest(), testNow)
	ledger := ledgerWith(t, existing)

	candidate, _ := New(validRequest(), testNow)
	err := Validate(candidate, ledger)
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("validation must not alter the ledger, len = %d", ledger.Len())
	}
}

func TestValidateSameTimeOtherDateOK(t *testing.T) {
	existing, _ := New(validRequest(), testNow)
	ledger := ledgerWith(t, existing)

	req := validRequest()
	req.Date = "2025-06-02"
	candidate, _ := New(req, testNow)
	if err := Validate(candidate, ledger); err != nil {
		t.Fatalf("different date should not collide, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"claire.moreau@example.fr", true},
		{"a@b", false},
		{"not-an-email", false},
		{"a b@c.fr", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			b, err := New(validRequest(), testNow)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			b.Email = tt.email
			err = Validate(b, emptyLedger(t))
			if tt.valid && err != nil {
				t.Fatalf("expected %q to pass, got %v", tt.email, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidEmail) {
				t.Fatalf("expected ErrInvalidEmail for %q, got %v", tt.email, err)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+33 6 12 34 56 78", true},
		{"(01) 23-45-67-89", true},
		{"0123456789", true},
		{"12345", false},
		{"+33 6 12 34 ab 78", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			b, err := New(validRequest(), testNow)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			b.Phone = tt.phone
			err = Validate(b, emptyLedger(t))
			if tt.valid && err != nil {
				t.Fatalf("expected %q to pass, got %v", tt.phone, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidPhone) {
				t.Fatalf("expected ErrInvalidPhone for %q, got %v", tt.phone, err)
			}
		})
	}
}

func TestValidateOrderCollisionFirst(t *testing.T) {
	existing, _ := New(validRequest(), testNow)
	ledger := ledgerWith(t, existing)

	// Candidate has both a collision and a bad email; the collision wins.
	candidate, _ := New(validRequest(), testNow)
	candidate.Email = "not-an-email"
	if err := Validate(candidate, ledger); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken first, got %v", err)
	}
}
