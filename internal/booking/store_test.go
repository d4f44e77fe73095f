package booking

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisStoreRoundTrip(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStore(client, "spa:bookings:test")
	ctx := context.Background()

	b, err := New(validRequest(), testNow)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, []Booking{b}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, b.ID, loaded[0].ID)
	assert.Equal(t, b.Date, loaded[0].Date)
	assert.Equal(t, b.Time, loaded[0].Time)
	assert.Equal(t, b.Notes, loaded[0].Notes)
	assert.True(t, b.CreatedAt.Equal(loaded[0].CreatedAt))
}

func TestRedisStoreMissingKey(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStore(client, "spa:bookings:test")

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRedisStoreCorruptData(t *testing.T) {
	mr, client := setupTestRedis(t)
	require.NoError(t, mr.Set("spa:bookings:test", "{not json"))

	store := NewRedisStore(client, "spa:bookings:test")
	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrCorruptLedger)

	// Open recovers from corrupt contents with an empty ledger.
	l := Open(context.Background(), store, nil)
	assert.Equal(t, 0, l.Len())
}

func TestRedisStoreClear(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStore(client, "spa:bookings:test")
	ctx := context.Background()

	b, err := New(validRequest(), testNow)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, []Booking{b}))

	require.NoError(t, store.Clear(ctx))
	assert.False(t, mr.Exists("spa:bookings:test"))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRedisStoreDefaultKey(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStore(client, "")
	ctx := context.Background()

	b, err := New(validRequest(), testNow)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, []Booking{b}))
	assert.True(t, mr.Exists("spa:bookings"))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	b, err := New(validRequest(), testNow)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, []Booking{b}))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, b.ID, loaded[0].ID)

	require.NoError(t, store.Clear(ctx))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
