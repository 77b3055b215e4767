package seats

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SeatLock is an ephemeral claim on one seat. It is never persisted to
// the database; it lives in whichever LockStore the engine was built
// with and dies on release, confirmation, or TTL expiry.
type SeatLock struct {
	FlightID   uuid.UUID `json:"flight_id"`
	SeatNumber string    `json:"seat_number"`
	Holder     string    `json:"holder"`
	LockedAt   time.Time `json:"locked_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the lock is past its TTL at the given instant.
func (l SeatLock) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// FailReason explains a per-seat lock or release failure to the caller.
type FailReason string

const (
	ReasonSeatNotFound    FailReason = "SeatNotFound"
	ReasonSeatUnavailable FailReason = "SeatUnavailable"
	ReasonSeatLocked      FailReason = "SeatLocked"
	ReasonNotLocked       FailReason = "NotLocked"
	ReasonNotAuthorized   FailReason = "NotAuthorized"
)

// LockStore is the pluggable lock table. The in-memory implementation
// serves single-instance deployments; the Redis one shares locks across
// instances with native TTL expiry. Semantics are identical: at most one
// live lock per (flight, seat) pair, acquire refreshes a holder's own
// lock, release requires the owning holder or an admin override.
type LockStore interface {
	// Acquire claims the seat until expiresAt. It fails with Conflict
	// when another holder owns a live lock.
	Acquire(ctx context.Context, flightID uuid.UUID, seatNumber, holder string, expiresAt time.Time) (*SeatLock, error)

	// Release drops the lock. It fails with NotFound when no live lock
	// exists and NotAuthorized when a different holder owns it and the
	// caller lacks the admin override.
	Release(ctx context.Context, flightID uuid.UUID, seatNumber, holder string, admin bool) error

	// ByHolder lists the live locks a holder has on one flight.
	ByHolder(ctx context.Context, flightID uuid.UUID, holder string) ([]SeatLock, error)

	// CountLocked counts live locks on a flight.
	CountLocked(ctx context.Context, flightID uuid.UUID) (int, error)

	// Sweep evicts expired locks and returns how many it removed.
	// Stores with native TTL expiry may make this a no-op.
	Sweep(ctx context.Context) int
}
