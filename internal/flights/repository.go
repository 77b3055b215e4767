package flights

import (
	"fmt"
	"strings"
	"time"

	"skybook/internal/shared/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(flight *Flight) error
	GetByID(id uuid.UUID) (*Flight, error)
	GetByFlightNumber(number string) (*Flight, error)
	GetAll(query FlightListQuery) ([]Flight, int64, error)
	SeedSeats(flightID uuid.UUID, seats []Seat) error
	GetSeats(flightID uuid.UUID) ([]Seat, error)
	GetSeatsByNumbers(flightID uuid.UUID, seatNumbers []string) ([]Seat, error)
	MarkSeatsUnavailable(flightID uuid.UUID, seatNumbers []string) error
	MarkSeatsAvailable(flightID uuid.UUID, seatNumbers []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(flight *Flight) error {
	return r.db.Create(flight).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Flight, error) {
	var flight Flight
	if err := r.db.Where("id = ?", id).First(&flight).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *repository) GetByFlightNumber(number string) (*Flight, error) {
	var flight Flight
	if err := r.db.Where("flight_number = ?", number).First(&flight).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *repository) GetAll(query FlightListQuery) ([]Flight, int64, error) {
	var flights []Flight
	var totalCount int64

	db := r.db.Model(&Flight{})

	if query.Origin != "" {
		db = db.Where("LOWER(origin) LIKE ?", "%"+strings.ToLower(query.Origin)+"%")
	}
	if query.Destination != "" {
		db = db.Where("LOWER(destination) LIKE ?", "%"+strings.ToLower(query.Destination)+"%")
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.DateFrom != "" {
		if dateFrom, err := time.Parse("2006-01-02", query.DateFrom); err == nil {
			db = db.Where("departure_time >= ?", dateFrom)
		}
	}
	if query.DateTo != "" {
		if dateTo, err := time.Parse("2006-01-02", query.DateTo); err == nil {
			// Add 24 hours to include the entire day
			dateTo = dateTo.Add(24 * time.Hour)
			db = db.Where("departure_time < ?", dateTo)
		}
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Order("departure_time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&flights).Error

	return flights, totalCount, err
}

// SeedSeats installs a flight's generated seat map exactly once. The
// seeded check runs inside the transaction so a racing second call fails
// with Conflict instead of duplicating inventory.
func (r *repository) SeedSeats(flightID uuid.UUID, seats []Seat) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&Seat{}).Where("flight_id = ?", flightID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check existing seats: %w", err)
		}
		if existing > 0 {
			return apperr.Conflict("seat map already generated for flight %s", flightID)
		}

		for i := range seats {
			seats[i].FlightID = flightID
		}
		if err := tx.CreateInBatches(seats, 200).Error; err != nil {
			return fmt.Errorf("failed to create seats: %w", err)
		}
		return nil
	})
}

func (r *repository) GetSeats(flightID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.Where("flight_id = ?", flightID).
		Order("row ASC, letter ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetSeatsByNumbers(flightID uuid.UUID, seatNumbers []string) ([]Seat, error) {
	var seats []Seat
	err := r.db.Where("flight_id = ? AND seat_number IN ?", flightID, seatNumbers).
		Find(&seats).Error
	return seats, err
}

func (r *repository) MarkSeatsUnavailable(flightID uuid.UUID, seatNumbers []string) error {
	return r.db.Model(&Seat{}).
		Where("flight_id = ? AND seat_number IN ?", flightID, seatNumbers).
		Update("is_available", false).Error
}

func (r *repository) MarkSeatsAvailable(flightID uuid.UUID, seatNumbers []string) error {
	return r.db.Model(&Seat{}).
		Where("flight_id = ? AND seat_number IN ?", flightID, seatNumbers).
		Update("is_available", true).Error
}

