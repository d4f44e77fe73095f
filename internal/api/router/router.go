package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sereine-spa/booking-api/internal/booking"
	"github.com/sereine-spa/booking-api/internal/catalog"
	"github.com/sereine-spa/booking-api/internal/http/handlers"
	httpmiddleware "github.com/sereine-spa/booking-api/internal/http/middleware"
	"github.com/sereine-spa/booking-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	CatalogHandler     *catalog.Handler
	BookingHandler     *booking.Handler
	AdminBookings      *handlers.AdminBookingsHandler
	AdminJWTSecret     string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public booking surface
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		public.Get("/services", cfg.CatalogHandler.ListServices)
		public.Get("/services/{serviceID}", cfg.CatalogHandler.GetService)
		public.Get("/availability", cfg.BookingHandler.GetAvailability)
		public.Post("/bookings", cfg.BookingHandler.CreateBooking)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Operator/debug surface, not part of the booking flow
	if cfg.AdminBookings != nil {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminJWTSecret))
			admin.Get("/bookings", cfg.AdminBookings.ListBookings)
			admin.Delete("/bookings", cfg.AdminBookings.ClearBookings)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
