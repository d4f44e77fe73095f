package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sereine-spa/booking-api/internal/api/router"
	"github.com/sereine-spa/booking-api/internal/app/bootstrap"
	"github.com/sereine-spa/booking-api/internal/booking"
	"github.com/sereine-spa/booking-api/internal/catalog"
	appconfig "github.com/sereine-spa/booking-api/internal/config"
	"github.com/sereine-spa/booking-api/internal/http/handlers"
	"github.com/sereine-spa/booking-api/internal/notify"
	"github.com/sereine-spa/booking-api/internal/observability/metrics"
	"github.com/sereine-spa/booking-api/pkg/logging"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting spa booking API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Ledger persistence: redis when configured, in-memory otherwise
	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	store := bootstrap.BuildBookingStore(redisClient, cfg, logger)
	ledger := booking.Open(ctx, store, logger)

	// Metrics
	registry := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(registry)
	bookingMetrics.SetLedgerSize(ledger.Len())
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	// Cosmetic confirmation email, log-only when sendgrid is not configured
	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	}
	notifier := notify.NewService(emailSender, logger)

	// Booking flow
	bookingService := booking.NewService(ledger, notifier, bookingMetrics, logger, cfg.ConfirmDelay)

	// Handlers
	catalogHandler := catalog.NewHandler(logger)
	bookingHandler := booking.NewHandler(bookingService, logger)
	adminBookings := handlers.NewAdminBookingsHandler(ledger, logger)

	// Router
	routerCfg := &router.Config{
		Logger:             logger,
		CatalogHandler:     catalogHandler,
		BookingHandler:     bookingHandler,
		AdminBookings:      adminBookings,
		AdminJWTSecret:     cfg.AdminJWTSecret,
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("server stopped")
}
