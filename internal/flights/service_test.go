package flights

import (
	"context"
	"testing"
	"time"

	"skybook/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(flight *Flight) error {
	args := m.Called(flight)
	return args.Error(0)
}

func (m *MockRepository) GetByID(id uuid.UUID) (*Flight, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Flight), args.Error(1)
}

func (m *MockRepository) GetByFlightNumber(number string) (*Flight, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Flight), args.Error(1)
}

func (m *MockRepository) GetAll(query FlightListQuery) ([]Flight, int64, error) {
	args := m.Called(query)
	return args.Get(0).([]Flight), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) SeedSeats(flightID uuid.UUID, seats []Seat) error {
	args := m.Called(flightID, seats)
	return args.Error(0)
}

func (m *MockRepository) GetSeats(flightID uuid.UUID) ([]Seat, error) {
	args := m.Called(flightID)
	return args.Get(0).([]Seat), args.Error(1)
}

func (m *MockRepository) GetSeatsByNumbers(flightID uuid.UUID, seatNumbers []string) ([]Seat, error) {
	args := m.Called(flightID, seatNumbers)
	return args.Get(0).([]Seat), args.Error(1)
}

func (m *MockRepository) MarkSeatsUnavailable(flightID uuid.UUID, seatNumbers []string) error {
	args := m.Called(flightID, seatNumbers)
	return args.Error(0)
}

func (m *MockRepository) MarkSeatsAvailable(flightID uuid.UUID, seatNumbers []string) error {
	args := m.Called(flightID, seatNumbers)
	return args.Error(0)
}

func validCreateRequest() CreateFlightRequest {
	departure := time.Now().Add(72 * time.Hour)
	return CreateFlightRequest{
		FlightNumber:  "SK101",
		Origin:        "Amsterdam",
		Destination:   "Lisbon",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
		EconomySeats:  12,
		BusinessSeats: 4,
		FirstSeats:    2,
		EconomyFare:   120,
		BusinessFare:  320,
		FirstFare:     640,
	}
}

func TestCreateFlight_SeedsSeatMapOnce(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.AnythingOfType("*flights.Flight")).Return(nil)
	repo.On("SeedSeats", mock.Anything, mock.AnythingOfType("[]flights.Seat")).Return(nil)

	resp, err := svc.CreateFlight(validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, 18, resp.TotalSeats)
	assert.Equal(t, 18, resp.AvailableSeats)
	assert.Equal(t, 0, resp.BookedSeats)

	seedCall := repo.Calls[1]
	seats := seedCall.Arguments.Get(1).([]Seat)
	assert.Len(t, seats, 18)
	repo.AssertExpectations(t)
}

func TestCreateFlight_SecondSeedRejected(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything).Return(nil)
	repo.On("SeedSeats", mock.Anything, mock.Anything).
		Return(apperr.Conflict("seat map already generated"))

	_, err := svc.CreateFlight(validCreateRequest())

	assert.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestCreateFlight_DepartureInPast(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	req := validCreateRequest()
	req.DepartureTime = time.Now().Add(-time.Hour)

	_, err := svc.CreateFlight(req)

	assert.True(t, apperr.Is(err, apperr.KindPolicyViolation))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateFlight_NoSeats(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	req := validCreateRequest()
	req.EconomySeats = 0
	req.BusinessSeats = 0
	req.FirstSeats = 0

	_, err := svc.CreateFlight(req)

	assert.True(t, apperr.Is(err, apperr.KindPolicyViolation))
}

func TestGetFlightByID_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	id := uuid.New()
	repo.On("GetByID", id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetFlightByID(context.Background(), id)

	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

type stubLockCounter struct {
	count int
}

func (s stubLockCounter) CountLocked(ctx context.Context, flightID uuid.UUID) (int, error) {
	return s.count, nil
}

func TestGetSeatMap_Stats(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	svc.SetLockCounter(stubLockCounter{count: 3})

	id := uuid.New()
	flight := &Flight{
		ID:             id,
		TotalSeats:     18,
		BookedSeats:    5,
		AvailableSeats: 13,
	}
	seats := GenerateSeatMap(CapacityConfig{Economy: 12, Business: 4, First: 2})

	repo.On("GetByID", id).Return(flight, nil)
	repo.On("GetSeats", id).Return(seats, nil)

	seatMap, err := svc.GetSeatMap(context.Background(), id)

	assert.NoError(t, err)
	assert.Len(t, seatMap.Seats, 18)
	assert.Equal(t, SeatMapStats{Total: 18, Available: 13, Booked: 5, Locked: 3}, seatMap.Stats)
}
