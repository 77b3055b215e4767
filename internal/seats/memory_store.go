package seats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"skybook/internal/shared/apperr"

	"github.com/google/uuid"
)

// MemoryLockStore keeps the lock table in process memory behind a single
// mutex. One exclusion domain guards the whole key map, so acquire,
// release and sweep are mutually exclusive per key and no operation ever
// holds two keys at once. Expired entries are treated as absent on every
// read; Sweep physically evicts them.
type MemoryLockStore struct {
	mu    sync.Mutex
	locks map[string]SeatLock
}

func NewMemoryLockStore() *MemoryLockStore {
	return &MemoryLockStore{
		locks: make(map[string]SeatLock),
	}
}

func lockKey(flightID uuid.UUID, seatNumber string) string {
	return fmt.Sprintf("%s:%s", flightID, seatNumber)
}

func (s *MemoryLockStore) Acquire(ctx context.Context, flightID uuid.UUID, seatNumber, holder string, expiresAt time.Time) (*SeatLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	key := lockKey(flightID, seatNumber)

	if existing, ok := s.locks[key]; ok && !existing.Expired(now) && existing.Holder != holder {
		return nil, apperr.Conflict("seat %s is locked by another holder", seatNumber)
	}

	lock := SeatLock{
		FlightID:   flightID,
		SeatNumber: seatNumber,
		Holder:     holder,
		LockedAt:   now,
		ExpiresAt:  expiresAt,
	}
	s.locks[key] = lock
	return &lock, nil
}

func (s *MemoryLockStore) Release(ctx context.Context, flightID uuid.UUID, seatNumber, holder string, admin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := lockKey(flightID, seatNumber)
	existing, ok := s.locks[key]
	if !ok || existing.Expired(time.Now()) {
		delete(s.locks, key)
		return apperr.NotFound("seat %s is not locked", seatNumber)
	}
	if existing.Holder != holder && !admin {
		return apperr.NotAuthorized("seat %s is locked by another holder", seatNumber)
	}

	delete(s.locks, key)
	return nil
}

func (s *MemoryLockStore) ByHolder(ctx context.Context, flightID uuid.UUID, holder string) ([]SeatLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var locks []SeatLock
	for _, lock := range s.locks {
		if lock.FlightID == flightID && lock.Holder == holder && !lock.Expired(now) {
			locks = append(locks, lock)
		}
	}
	return locks, nil
}

func (s *MemoryLockStore) CountLocked(ctx context.Context, flightID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	count := 0
	for _, lock := range s.locks {
		if lock.FlightID == flightID && !lock.Expired(now) {
			count++
		}
	}
	return count, nil
}

// Sweep removes every expired entry. It is idempotent and safe to run
// concurrently with acquire and release.
func (s *MemoryLockStore) Sweep(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	evicted := 0
	for key, lock := range s.locks {
		if lock.Expired(now) {
			delete(s.locks, key)
			evicted++
		}
	}
	return evicted
}
