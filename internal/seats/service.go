package seats

import (
	"context"
	"time"

	"skybook/internal/flights"
	"skybook/internal/shared/apperr"
	"skybook/pkg/logger"

	"github.com/google/uuid"
)

// FlightService is the narrow slice of the flights package the
// reservation layer needs to validate requests.
type FlightService interface {
	GetFlight(id uuid.UUID) (*flights.Flight, error)
	GetSeatsByNumbers(flightID uuid.UUID, seatNumbers []string) ([]flights.Seat, error)
}

// Service shapes lock requests before they reach the store: it enforces
// the per-call seat ceiling, validates every seat against the flight's
// inventory, and reports partial success per seat. It never touches the
// flight's availability counters; a lock is provisional intent, not a
// committed sale.
type Service interface {
	LockSeats(ctx context.Context, flightID uuid.UUID, seatNumbers []string, holder string) (*LockResult, error)
	ReleaseSeats(ctx context.Context, flightID uuid.UUID, seatNumbers []string, holder string, admin bool) (*ReleaseResult, error)
	GetLockedByHolder(ctx context.Context, flightID uuid.UUID, holder string) ([]SeatLock, error)
	CountLocked(ctx context.Context, flightID uuid.UUID) (int, error)
	SweepExpired(ctx context.Context) int
}

type LockedSeat struct {
	SeatNumber string    `json:"seat_number"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type FailedSeat struct {
	SeatNumber string     `json:"seat_number"`
	Reason     FailReason `json:"reason"`
}

type LockResult struct {
	Locked    []LockedSeat `json:"locked_seats"`
	Failed    []FailedSeat `json:"failed_seats"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type ReleaseResult struct {
	Released []string     `json:"released_seats"`
	Failed   []FailedSeat `json:"failed_seats"`
}

type service struct {
	store         LockStore
	flightService FlightService
	lockTTL       time.Duration
	maxSeats      int
}

func NewService(store LockStore, flightService FlightService, lockTTL time.Duration, maxSeats int) Service {
	return &service{
		store:         store,
		flightService: flightService,
		lockTTL:       lockTTL,
		maxSeats:      maxSeats,
	}
}

func (s *service) LockSeats(ctx context.Context, flightID uuid.UUID, seatNumbers []string, holder string) (*LockResult, error) {
	seatNumbers = dedupe(seatNumbers)

	if len(seatNumbers) == 0 {
		return nil, apperr.PolicyViolation("no seats requested")
	}
	// Exceeding the ceiling fails the whole call, not just the overflow.
	if len(seatNumbers) > s.maxSeats {
		return nil, apperr.PolicyViolation("cannot lock more than %d seats per request", s.maxSeats)
	}

	flight, err := s.flightService.GetFlight(flightID)
	if err != nil {
		return nil, err
	}
	if !flight.Status.IsBookable() {
		return nil, apperr.PolicyViolation("flight %s is not open for booking", flight.FlightNumber)
	}

	inventory, err := s.flightService.GetSeatsByNumbers(flightID, seatNumbers)
	if err != nil {
		return nil, err
	}
	byNumber := make(map[string]flights.Seat, len(inventory))
	for _, seat := range inventory {
		byNumber[seat.SeatNumber] = seat
	}

	expiresAt := time.Now().Add(s.lockTTL)
	result := &LockResult{ExpiresAt: expiresAt}

	for _, number := range seatNumbers {
		seat, exists := byNumber[number]
		if !exists {
			result.Failed = append(result.Failed, FailedSeat{SeatNumber: number, Reason: ReasonSeatNotFound})
			continue
		}
		if !seat.IsAvailable {
			result.Failed = append(result.Failed, FailedSeat{SeatNumber: number, Reason: ReasonSeatUnavailable})
			continue
		}

		lock, err := s.store.Acquire(ctx, flightID, number, holder, expiresAt)
		if err != nil {
			if apperr.Is(err, apperr.KindConflict) {
				result.Failed = append(result.Failed, FailedSeat{SeatNumber: number, Reason: ReasonSeatLocked})
				continue
			}
			return nil, err
		}
		result.Locked = append(result.Locked, LockedSeat{SeatNumber: lock.SeatNumber, ExpiresAt: lock.ExpiresAt})
	}

	if len(result.Locked) > 0 {
		logger.GetDefault().LogSeatsLocked(ctx, flightID.String(), holder, len(result.Locked))
	}

	return result, nil
}

func (s *service) ReleaseSeats(ctx context.Context, flightID uuid.UUID, seatNumbers []string, holder string, admin bool) (*ReleaseResult, error) {
	seatNumbers = dedupe(seatNumbers)
	if len(seatNumbers) == 0 {
		return nil, apperr.PolicyViolation("no seats requested")
	}

	result := &ReleaseResult{}
	for _, number := range seatNumbers {
		err := s.store.Release(ctx, flightID, number, holder, admin)
		switch {
		case err == nil:
			result.Released = append(result.Released, number)
		case apperr.Is(err, apperr.KindNotFound):
			result.Failed = append(result.Failed, FailedSeat{SeatNumber: number, Reason: ReasonNotLocked})
		case apperr.Is(err, apperr.KindNotAuthorized):
			result.Failed = append(result.Failed, FailedSeat{SeatNumber: number, Reason: ReasonNotAuthorized})
		default:
			return nil, err
		}
	}
	return result, nil
}

func (s *service) GetLockedByHolder(ctx context.Context, flightID uuid.UUID, holder string) ([]SeatLock, error) {
	return s.store.ByHolder(ctx, flightID, holder)
}

func (s *service) CountLocked(ctx context.Context, flightID uuid.UUID) (int, error) {
	return s.store.CountLocked(ctx, flightID)
}

func (s *service) SweepExpired(ctx context.Context) int {
	evicted := s.store.Sweep(ctx)
	if evicted > 0 {
		logger.GetDefault().LogLockSweep(ctx, evicted)
	}
	return evicted
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
