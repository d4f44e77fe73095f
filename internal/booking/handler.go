package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sereine-spa/booking-api/internal/catalog"
	"github.com/sereine-spa/booking-api/pkg/logging"
)

// Handler handles HTTP requests for bookings
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new booking handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateBooking handles POST /bookings requests
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode booking request", "error", err)
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	confirmation, err := h.service.Submit(r.Context(), req)
	if err != nil {
		writeJSONError(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(confirmation); err != nil {
		h.logger.Error("failed to encode confirmation", "error", err)
	}
}

// AvailabilityResponse is the response for an availability query
type AvailabilityResponse struct {
	Date    string   `json:"date"`
	MinDate string   `json:"min_date"`
	Slots   []string `json:"slots"`
}

// GetAvailability handles GET /availability?date=YYYY-MM-DD requests
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeJSONError(w, "missing date parameter", http.StatusBadRequest)
		return
	}

	slots, minDate, err := h.service.Availability(date)
	if err != nil {
		writeJSONError(w, "invalid date", http.StatusBadRequest)
		return
	}

	response := AvailabilityResponse{
		Date:    date,
		MinDate: minDate,
		Slots:   slots,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode availability response", "error", err)
	}
}

// statusFor maps submission errors to HTTP statuses. A slot collision is a
// conflict so the client knows to refresh its availability view.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, ErrSubmissionInFlight):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidPhone),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidTime),
		errors.Is(err, ErrMissingName):
		return http.StatusUnprocessableEntity
	case errors.Is(err, catalog.ErrUnknownService):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSONError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
