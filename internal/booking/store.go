package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store is the persistence boundary for the ledger. The whole booking list
// is serialized and replaced on every save; there are no partial writes.
type Store interface {
	Load(ctx context.Context) ([]Booking, error)
	Save(ctx context.Context, bookings []Booking) error
	Clear(ctx context.Context) error
}

// RedisStore keeps the serialized ledger under a single key.
type RedisStore struct {
	redis *redis.Client
	key   string
}

// NewRedisStore creates a ledger store backed by redis.
func NewRedisStore(redisClient *redis.Client, key string) *RedisStore {
	if redisClient == nil {
		panic("booking: redis client required")
	}
	if key == "" {
		key = "spa:bookings"
	}
	return &RedisStore{redis: redisClient, key: key}
}

// Load reads the full booking list. A missing key yields an empty list;
// undecodable contents are reported as ErrCorruptLedger.
func (s *RedisStore) Load(ctx context.Context) ([]Booking, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("booking: load ledger: %w", err)
	}

	var bookings []Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}
	return bookings, nil
}

// Save serializes and writes the full booking list.
func (s *RedisStore) Save(ctx context.Context, bookings []Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("booking: marshal ledger: %w", err)
	}
	if err := s.redis.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("booking: save ledger: %w", err)
	}
	return nil
}

// Clear removes the stored ledger.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("booking: clear ledger: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store used when redis is not configured and
// in tests. Contents do not survive a restart.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load decodes the stored list, empty when nothing was saved.
func (s *MemoryStore) Load(ctx context.Context) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, nil
	}
	var bookings []Booking
	if err := json.Unmarshal(s.data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}
	return bookings, nil
}

// Save replaces the stored list.
func (s *MemoryStore) Save(ctx context.Context, bookings []Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("booking: marshal ledger: %w", err)
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Clear removes the stored list.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
	return nil
}
