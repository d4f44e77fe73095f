package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sereine-spa/booking-api/pkg/logging"
)

// Handler serves the catalog browse view.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// ListServicesResponse is the response for listing services
type ListServicesResponse struct {
	Services []Service `json:"services"`
	Count    int       `json:"count"`
}

// ListServices handles GET /services requests
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	all := All()
	response := ListServicesResponse{
		Services: all,
		Count:    len(all),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode services response", "error", err)
	}
}

// GetService handles GET /services/{serviceID} requests, backing the booking
// form's summary preview.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "serviceID")
	service, err := Get(id)
	if err != nil {
		http.Error(w, "unknown service", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(service); err != nil {
		h.logger.Error("failed to encode service response", "error", err)
	}
}
