// Package handlers holds the administrative HTTP handlers.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sereine-spa/booking-api/internal/booking"
	"github.com/sereine-spa/booking-api/pkg/logging"
)

// AdminBookingsHandler exposes the operator/debug surface: read every
// booking record and clear the whole ledger.
type AdminBookingsHandler struct {
	ledger *booking.Ledger
	logger *logging.Logger
}

// NewAdminBookingsHandler creates the admin bookings handler.
func NewAdminBookingsHandler(ledger *booking.Ledger, logger *logging.Logger) *AdminBookingsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminBookingsHandler{ledger: ledger, logger: logger}
}

// ListBookingsResponse is the response for listing all bookings
type ListBookingsResponse struct {
	Bookings []booking.Booking `json:"bookings"`
	Count    int               `json:"count"`
}

// ListBookings handles GET /admin/bookings requests
func (h *AdminBookingsHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	all := h.ledger.All()
	response := ListBookingsResponse{
		Bookings: all,
		Count:    len(all),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode bookings response", "error", err)
	}
}

// ClearBookings handles DELETE /admin/bookings requests. Erases every
// booking record.
func (h *AdminBookingsHandler) ClearBookings(w http.ResponseWriter, r *http.Request) {
	removed := h.ledger.Len()
	if err := h.ledger.Clear(r.Context()); err != nil {
		h.logger.Error("failed to clear bookings", "error", err)
		http.Error(w, "failed to clear bookings", http.StatusInternalServerError)
		return
	}

	h.logger.Info("ledger cleared by operator", "removed", removed)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"removed": removed})
}
