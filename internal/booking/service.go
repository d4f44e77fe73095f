package booking

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sereine-spa/booking-api/internal/catalog"
	"github.com/sereine-spa/booking-api/internal/observability/metrics"
	"github.com/sereine-spa/booking-api/internal/schedule"
	"github.com/sereine-spa/booking-api/pkg/logging"
)

var bookingTracer = otel.Tracer("spa.internal.booking")

// State is the submission flow state.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
)

// Notifier delivers the cosmetic confirmation email for a new booking.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b Booking, svc catalog.Service) error
}

// Confirmation is returned for a successful submission.
type Confirmation struct {
	Booking     Booking         `json:"booking"`
	Service     catalog.Service `json:"service"`
	EmailNotice string          `json:"email_notice"`
}

// Service runs the booking submission flow: idle, submitting (one at a
// time, with an artificial delay modelling the upstream round trip), then
// confirmed or back to idle on a validation failure.
type Service struct {
	ledger   *Ledger
	notifier Notifier
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger

	delay time.Duration
	now   func() time.Time
	sleep func(time.Duration)

	submitting atomic.Bool
}

// NewService constructs a booking submission service. notifier and m may be
// nil.
func NewService(ledger *Ledger, notifier Notifier, m *metrics.BookingMetrics, logger *logging.Logger, delay time.Duration) *Service {
	if ledger == nil {
		panic("booking: ledger required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		ledger:   ledger,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		delay:    delay,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// WithClock overrides the time source and sleep function, used in tests.
func (s *Service) WithClock(now func() time.Time, sleep func(time.Duration)) *Service {
	if now != nil {
		s.now = now
	}
	if sleep != nil {
		s.sleep = sleep
	}
	return s
}

// State reports the current submission flow state.
func (s *Service) State() State {
	if s.submitting.Load() {
		return StateSubmitting
	}
	return StateIdle
}

// Submit runs one submission through the flow. Only one submission may be in
// flight at a time; a second concurrent call fails with
// ErrSubmissionInFlight. Once submitting, the flow runs to completion and is
// not cancelable.
func (s *Service) Submit(ctx context.Context, req CreateBookingRequest) (*Confirmation, error) {
	if !s.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer s.submitting.Store(false)

	ctx, span := bookingTracer.Start(ctx, "booking.submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("spa.service_id", req.ServiceID),
		attribute.String("spa.date", req.Date),
		attribute.String("spa.time", req.Time),
	)

	start := s.now()

	b, err := New(req, start)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveValidationFailure(failureReason(err))
		return nil, err
	}
	svc, _ := catalog.Get(b.ServiceID)

	if err := Validate(b, s.ledger); err != nil {
		span.RecordError(err)
		s.metrics.ObserveValidationFailure(failureReason(err))
		s.logger.Info("booking rejected", "reason", err, "date", b.Date, "time", b.Time)
		return nil, err
	}

	// Models the upstream confirmation round trip.
	s.sleep(s.delay)

	if err := s.ledger.Append(ctx, b); err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrSlotTaken) {
			s.metrics.ObserveValidationFailure(failureReason(err))
			return nil, err
		}
		s.logger.Error("failed to persist booking", "error", err, "booking_id", b.ID)
		return nil, err
	}

	s.metrics.ObserveCreated()
	s.metrics.SetLedgerSize(s.ledger.Len())
	s.metrics.ObserveSubmitDuration(s.now().Sub(start).Seconds())

	if s.notifier != nil {
		// Cosmetic only; a delivery failure never fails the booking.
		if err := s.notifier.BookingConfirmed(ctx, b, svc); err != nil {
			s.logger.Warn("confirmation email not sent", "error", err, "booking_id", b.ID)
		}
	}

	s.logger.Info("booking confirmed",
		"booking_id", b.ID,
		"service", b.ServiceID,
		"date", b.Date,
		"time", b.Time,
	)

	return &Confirmation{
		Booking:     b,
		Service:     svc,
		EmailNotice: "Un email de confirmation a été envoyé à " + b.Email,
	}, nil
}

// Availability returns the free slots for a date given the current ledger,
// along with the minimum selectable booking date.
func (s *Service) Availability(date string) (slots []string, minDate string, err error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, "", ErrInvalidDate
	}
	return schedule.Available(s.ledger.TimesOn(date)), schedule.MinBookingDate(s.now()), nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrSlotTaken):
		return "slot_taken"
	case errors.Is(err, ErrInvalidEmail):
		return "email"
	case errors.Is(err, ErrInvalidPhone):
		return "phone"
	case errors.Is(err, catalog.ErrUnknownService):
		return "service"
	case errors.Is(err, ErrInvalidDate):
		return "date"
	case errors.Is(err, ErrInvalidTime):
		return "time"
	case errors.Is(err, ErrMissingName):
		return "name"
	default:
		return "other"
	}
}
