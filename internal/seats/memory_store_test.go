package seats

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"skybook/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLockStore_AcquireAndRelease(t *testing.T) {
	store := NewMemoryLockStore()
	ctx := context.Background()
	flightID := uuid.New()
	expiresAt := time.Now().Add(10 * time.Minute)

	lock, err := store.Acquire(ctx, flightID, "12A", "user-1", expiresAt)
	require.NoError(t, err)
	assert.Equal(t, "12A", lock.SeatNumber)
	assert.Equal(t, "user-1", lock.Holder)
	assert.Equal(t, expiresAt, lock.ExpiresAt)

	// A different holder is rejected while the lock is live.
	_, err = store.Acquire(ctx, flightID, "12A", "user-2", expiresAt)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	// The owning holder refreshes its own lock.
	refreshed := expiresAt.Add(5 * time.Minute)
	lock, err = store.Acquire(ctx, flightID, "12A", "user-1", refreshed)
	require.NoError(t, err)
	assert.Equal(t, refreshed, lock.ExpiresAt)

	require.NoError(t, store.Release(ctx, flightID, "12A", "user-1", false))

	// Released means acquirable by anyone.
	_, err = store.Acquire(ctx, flightID, "12A", "user-2", expiresAt)
	assert.NoError(t, err)
}

func TestMemoryLockStore_ReleaseAuthorization(t *testing.T) {
	store := NewMemoryLockStore()
	ctx := context.Background()
	flightID := uuid.New()
	expiresAt := time.Now().Add(10 * time.Minute)

	_, err := store.Acquire(ctx, flightID, "1A", "user-1", expiresAt)
	require.NoError(t, err)

	err = store.Release(ctx, flightID, "1A", "user-2", false)
	assert.True(t, apperr.Is(err, apperr.KindNotAuthorized))

	// Admin override releases a foreign lock.
	assert.NoError(t, store.Release(ctx, flightID, "1A", "user-2", true))

	err = store.Release(ctx, flightID, "1A", "user-1", false)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestMemoryLockStore_ExpiredLockIsAbsent(t *testing.T) {
	store := NewMemoryLockStore()
	ctx := context.Background()
	flightID := uuid.New()

	_, err := store.Acquire(ctx, flightID, "2B", "user-1", time.Now().Add(-time.Second))
	require.NoError(t, err)

	// Expired entries behave as absent on every read path.
	_, err = store.Acquire(ctx, flightID, "2B", "user-2", time.Now().Add(time.Minute))
	assert.NoError(t, err)

	count, err := store.CountLocked(ctx, flightID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryLockStore_Sweep(t *testing.T) {
	store := NewMemoryLockStore()
	ctx := context.Background()
	flightID := uuid.New()

	_, err := store.Acquire(ctx, flightID, "3A", "user-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = store.Acquire(ctx, flightID, "3B", "user-1", time.Now().Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 1, store.Sweep(ctx))
	assert.Equal(t, 0, store.Sweep(ctx)) // idempotent

	count, err := store.CountLocked(ctx, flightID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryLockStore_ByHolder(t *testing.T) {
	store := NewMemoryLockStore()
	ctx := context.Background()
	flightID := uuid.New()
	otherFlight := uuid.New()
	expiresAt := time.Now().Add(10 * time.Minute)

	for _, seat := range []string{"4A", "4B"} {
		_, err := store.Acquire(ctx, flightID, seat, "user-1", expiresAt)
		require.NoError(t, err)
	}
	_, err := store.Acquire(ctx, flightID, "4C", "user-2", expiresAt)
	require.NoError(t, err)
	_, err = store.Acquire(ctx, otherFlight, "4A", "user-1", expiresAt)
	require.NoError(t, err)

	locks, err := store.ByHolder(ctx, flightID, "user-1")
	require.NoError(t, err)
	assert.Len(t, locks, 2)
	for _, lock := range locks {
		assert.Equal(t, flightID, lock.FlightID)
		assert.Equal(t, "user-1", lock.Holder)
	}
}

// N holders race to lock the same seat; exactly one wins.
func TestMemoryLockStore_ConcurrentAcquireSingleWinner(t *testing.T) {
	store := NewMemoryLockStore()
	ctx := context.Background()
	flightID := uuid.New()
	expiresAt := time.Now().Add(10 * time.Minute)

	const holders = 50
	var wins int64
	var wg sync.WaitGroup

	for i := 0; i < holders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := store.Acquire(ctx, flightID, "17C", uuid.NewString(), expiresAt)
			if err == nil {
				atomic.AddInt64(&wins, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins)

	count, err := store.CountLocked(ctx, flightID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryLockStore_ConcurrentSweepSafe(t *testing.T) {
	store := NewMemoryLockStore()
	ctx := context.Background()
	flightID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			seat := string(rune('A' + n%6))
			_, _ = store.Acquire(ctx, flightID, seat, "user", time.Now().Add(time.Millisecond))
		}(i)
		go func() {
			defer wg.Done()
			store.Sweep(ctx)
		}()
	}
	wg.Wait()
}
