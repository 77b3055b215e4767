package seats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skybook/internal/flights"
	"skybook/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) GetFlight(id uuid.UUID) (*flights.Flight, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flights.Flight), args.Error(1)
}

func (m *MockFlightService) GetSeatsByNumbers(flightID uuid.UUID, seatNumbers []string) ([]flights.Seat, error) {
	args := m.Called(flightID, seatNumbers)
	return args.Get(0).([]flights.Seat), args.Error(1)
}

func bookableFlight(id uuid.UUID) *flights.Flight {
	return &flights.Flight{
		ID:            id,
		FlightNumber:  "SK101",
		Status:        flights.StatusScheduled,
		DepartureTime: time.Now().Add(72 * time.Hour),
	}
}

func availableSeats(numbers ...string) []flights.Seat {
	seats := make([]flights.Seat, len(numbers))
	for i, n := range numbers {
		seats[i] = flights.Seat{SeatNumber: n, IsAvailable: true}
	}
	return seats
}

func newTestService(flightService FlightService) (Service, *MemoryLockStore) {
	store := NewMemoryLockStore()
	return NewService(store, flightService, 10*time.Minute, 9), store
}

func TestLockSeats_TooManySeatsFailsWholeCall(t *testing.T) {
	fs := new(MockFlightService)
	svc, store := newTestService(fs)

	flightID := uuid.New()
	numbers := make([]string, 10)
	for i := range numbers {
		numbers[i] = fmt.Sprintf("%dA", i+1)
	}

	_, err := svc.LockSeats(context.Background(), flightID, numbers, "user-1")

	assert.True(t, apperr.Is(err, apperr.KindPolicyViolation))
	fs.AssertNotCalled(t, "GetFlight")

	count, _ := store.CountLocked(context.Background(), flightID)
	assert.Zero(t, count)
}

func TestLockSeats_NineSeatsShareExpiry(t *testing.T) {
	fs := new(MockFlightService)
	svc, _ := newTestService(fs)

	flightID := uuid.New()
	numbers := make([]string, 9)
	for i := range numbers {
		numbers[i] = fmt.Sprintf("%dA", i+1)
	}

	fs.On("GetFlight", flightID).Return(bookableFlight(flightID), nil)
	fs.On("GetSeatsByNumbers", flightID, numbers).Return(availableSeats(numbers...), nil)

	result, err := svc.LockSeats(context.Background(), flightID, numbers, "user-1")

	require.NoError(t, err)
	assert.Len(t, result.Locked, 9)
	assert.Empty(t, result.Failed)
	for _, locked := range result.Locked {
		assert.Equal(t, result.ExpiresAt, locked.ExpiresAt)
	}
}

func TestLockSeats_PartialSuccessWithReasons(t *testing.T) {
	fs := new(MockFlightService)
	svc, store := newTestService(fs)

	flightID := uuid.New()
	requested := []string{"1A", "1B", "1C", "99Z"}

	inventory := []flights.Seat{
		{SeatNumber: "1A", IsAvailable: true},
		{SeatNumber: "1B", IsAvailable: false}, // already booked
		{SeatNumber: "1C", IsAvailable: true},  // will be locked by someone else
	}

	fs.On("GetFlight", flightID).Return(bookableFlight(flightID), nil)
	fs.On("GetSeatsByNumbers", flightID, requested).Return(inventory, nil)

	_, err := store.Acquire(context.Background(), flightID, "1C", "rival", time.Now().Add(10*time.Minute))
	require.NoError(t, err)

	result, err := svc.LockSeats(context.Background(), flightID, requested, "user-1")
	require.NoError(t, err)

	assert.Len(t, result.Locked, 1)
	assert.Equal(t, "1A", result.Locked[0].SeatNumber)

	reasons := make(map[string]FailReason)
	for _, f := range result.Failed {
		reasons[f.SeatNumber] = f.Reason
	}
	assert.Equal(t, ReasonSeatUnavailable, reasons["1B"])
	assert.Equal(t, ReasonSeatLocked, reasons["1C"])
	assert.Equal(t, ReasonSeatNotFound, reasons["99Z"])
}

func TestLockSeats_FlightNotBookable(t *testing.T) {
	fs := new(MockFlightService)
	svc, _ := newTestService(fs)

	flightID := uuid.New()
	flight := bookableFlight(flightID)
	flight.Status = flights.StatusDeparted

	fs.On("GetFlight", flightID).Return(flight, nil)

	_, err := svc.LockSeats(context.Background(), flightID, []string{"1A"}, "user-1")

	assert.True(t, apperr.Is(err, apperr.KindPolicyViolation))
}

func TestLockSeats_IdempotentForSameHolder(t *testing.T) {
	fs := new(MockFlightService)
	svc, _ := newTestService(fs)

	flightID := uuid.New()
	numbers := []string{"2A"}

	fs.On("GetFlight", flightID).Return(bookableFlight(flightID), nil)
	fs.On("GetSeatsByNumbers", flightID, numbers).Return(availableSeats("2A"), nil)

	first, err := svc.LockSeats(context.Background(), flightID, numbers, "user-1")
	require.NoError(t, err)
	require.Len(t, first.Locked, 1)

	// Re-locking your own seat refreshes rather than conflicts.
	second, err := svc.LockSeats(context.Background(), flightID, numbers, "user-1")
	require.NoError(t, err)
	assert.Len(t, second.Locked, 1)
	assert.Empty(t, second.Failed)
}

func TestReleaseSeats_ReasonsAndAdminOverride(t *testing.T) {
	fs := new(MockFlightService)
	svc, store := newTestService(fs)

	flightID := uuid.New()
	ctx := context.Background()

	_, err := store.Acquire(ctx, flightID, "3A", "owner", time.Now().Add(10*time.Minute))
	require.NoError(t, err)

	// Non-owner, no admin: NotAuthorized. Unlocked seat: NotLocked.
	result, err := svc.ReleaseSeats(ctx, flightID, []string{"3A", "3B"}, "intruder", false)
	require.NoError(t, err)
	assert.Empty(t, result.Released)

	reasons := make(map[string]FailReason)
	for _, f := range result.Failed {
		reasons[f.SeatNumber] = f.Reason
	}
	assert.Equal(t, ReasonNotAuthorized, reasons["3A"])
	assert.Equal(t, ReasonNotLocked, reasons["3B"])

	// Admin override succeeds.
	result, err = svc.ReleaseSeats(ctx, flightID, []string{"3A"}, "intruder", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"3A"}, result.Released)
}

func TestGetLockedByHolder(t *testing.T) {
	fs := new(MockFlightService)
	svc, store := newTestService(fs)

	flightID := uuid.New()
	ctx := context.Background()
	expiresAt := time.Now().Add(10 * time.Minute)

	_, err := store.Acquire(ctx, flightID, "5A", "user-1", expiresAt)
	require.NoError(t, err)
	_, err = store.Acquire(ctx, flightID, "5B", "user-2", expiresAt)
	require.NoError(t, err)

	locks, err := svc.GetLockedByHolder(ctx, flightID, "user-1")
	require.NoError(t, err)
	assert.Len(t, locks, 1)
	assert.Equal(t, "5A", locks[0].SeatNumber)
}
