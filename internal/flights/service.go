package flights

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"skybook/internal/shared/apperr"
	"skybook/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	flightCacheTTL     = 30 * time.Second
	flightCacheKey     = "skybook:flights:detail:"
	flightCachePattern = "skybook:flights:*"
)

// LockCounter reports how many live seat locks exist on a flight. The
// reservation layer implements it; the indirection keeps this package from
// depending on the lock store.
type LockCounter interface {
	CountLocked(ctx context.Context, flightID uuid.UUID) (int, error)
}

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetLockCounter(counter LockCounter)
	CreateFlight(req CreateFlightRequest) (*FlightResponse, error)
	GetFlightByID(ctx context.Context, id uuid.UUID) (*FlightResponse, error)
	GetAllFlights(query FlightListQuery) (*PaginatedFlights, error)
	GetSeatMap(ctx context.Context, flightID uuid.UUID) (*SeatMapResponse, error)

	// Used by the reservation and booking layers.
	GetFlight(id uuid.UUID) (*Flight, error)
	GetSeatsByNumbers(flightID uuid.UUID, seatNumbers []string) ([]Seat, error)
	MarkSeatsUnavailable(flightID uuid.UUID, seatNumbers []string) error
	MarkSeatsAvailable(flightID uuid.UUID, seatNumbers []string) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
	lockCounter  LockCounter
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetLockCounter(counter LockCounter) {
	s.lockCounter = counter
}

func (s *service) CreateFlight(req CreateFlightRequest) (*FlightResponse, error) {
	if !req.DepartureTime.After(time.Now()) {
		return nil, apperr.PolicyViolation("departure time must be in the future")
	}
	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, apperr.PolicyViolation("arrival time must be after departure time")
	}

	capacity := CapacityConfig{
		Economy:  req.EconomySeats,
		Business: req.BusinessSeats,
		First:    req.FirstSeats,
	}
	if capacity.Total() == 0 {
		return nil, apperr.PolicyViolation("flight must have at least one seat")
	}

	flight := &Flight{
		FlightNumber:   req.FlightNumber,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		Status:         StatusScheduled,
		TotalSeats:     capacity.Total(),
		BookedSeats:    0,
		AvailableSeats: capacity.Total(),
		EconomyFare:    req.EconomyFare,
		BusinessFare:   req.BusinessFare,
		FirstFare:      req.FirstFare,
	}

	if err := s.repo.Create(flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	// Seat map generation happens exactly once per flight; SeedSeats
	// rejects a second attempt with Conflict.
	seats := GenerateSeatMap(capacity)
	if err := s.repo.SeedSeats(flight.ID, seats); err != nil {
		return nil, err
	}

	s.invalidateCache(context.Background())

	resp := flight.ToResponse()
	return &resp, nil
}

func (s *service) GetFlightByID(ctx context.Context, id uuid.UUID) (*FlightResponse, error) {
	cacheKey := flightCacheKey + id.String()
	if s.cacheService != nil {
		var cached FlightResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	flight, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("flight %s not found", id)
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	resp := flight.ToResponse()
	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, resp, flightCacheTTL)
	}
	return &resp, nil
}

func (s *service) GetAllFlights(query FlightListQuery) (*PaginatedFlights, error) {
	flights, totalCount, err := s.repo.GetAll(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	responses := make([]FlightResponse, len(flights))
	for i, flight := range flights {
		responses[i] = flight.ToResponse()
	}

	return &PaginatedFlights{
		Flights:    responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) GetSeatMap(ctx context.Context, flightID uuid.UUID) (*SeatMapResponse, error) {
	flight, err := s.repo.GetByID(flightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("flight %s not found", flightID)
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	seats, err := s.repo.GetSeats(flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats: %w", err)
	}

	locked := 0
	if s.lockCounter != nil {
		if n, err := s.lockCounter.CountLocked(ctx, flightID); err == nil {
			locked = n
		}
	}

	return &SeatMapResponse{
		FlightID: flightID.String(),
		Seats:    seats,
		Stats: SeatMapStats{
			Total:     flight.TotalSeats,
			Available: flight.AvailableSeats,
			Booked:    flight.BookedSeats,
			Locked:    locked,
		},
	}, nil
}

func (s *service) GetFlight(id uuid.UUID) (*Flight, error) {
	flight, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("flight %s not found", id)
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return flight, nil
}

func (s *service) GetSeatsByNumbers(flightID uuid.UUID, seatNumbers []string) ([]Seat, error) {
	return s.repo.GetSeatsByNumbers(flightID, seatNumbers)
}

func (s *service) MarkSeatsUnavailable(flightID uuid.UUID, seatNumbers []string) error {
	defer s.invalidateCache(context.Background())
	return s.repo.MarkSeatsUnavailable(flightID, seatNumbers)
}

func (s *service) MarkSeatsAvailable(flightID uuid.UUID, seatNumbers []string) error {
	defer s.invalidateCache(context.Background())
	return s.repo.MarkSeatsAvailable(flightID, seatNumbers)
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.DeletePattern(ctx, flightCachePattern)
}
