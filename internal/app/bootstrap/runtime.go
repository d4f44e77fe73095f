// Package bootstrap wires runtime dependencies from configuration.
package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/sereine-spa/booking-api/internal/booking"
	appconfig "github.com/sereine-spa/booking-api/internal/config"
	"github.com/sereine-spa/booking-api/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildBookingStore returns the ledger store: redis-backed when a client is
// available, in-memory otherwise. The in-memory store does not survive a
// restart, which is acceptable for development.
func BuildBookingStore(redisClient *redis.Client, cfg *appconfig.Config, logger *logging.Logger) booking.Store {
	if logger == nil {
		logger = logging.Default()
	}
	if redisClient == nil {
		logger.Warn("redis not configured, bookings will not survive a restart")
		return booking.NewMemoryStore()
	}
	key := ""
	if cfg != nil {
		key = cfg.BookingStoreKey
	}
	return booking.NewRedisStore(redisClient, key)
}
