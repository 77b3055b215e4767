package flights

import (
	"time"

	"github.com/google/uuid"
)

type CabinClass string

const (
	ClassFirst    CabinClass = "first"
	ClassBusiness CabinClass = "business"
	ClassEconomy  CabinClass = "economy"
)

type SeatPosition string

const (
	PositionWindow SeatPosition = "window"
	PositionAisle  SeatPosition = "aisle"
	PositionMiddle SeatPosition = "middle"
)

type Flight struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FlightNumber  string    `json:"flight_number" gorm:"uniqueIndex;not null;size:10"`
	Origin        string    `json:"origin" gorm:"not null;size:64"`
	Destination   string    `json:"destination" gorm:"not null;size:64"`
	DepartureTime time.Time `json:"departure_time" gorm:"not null;index"`
	ArrivalTime   time.Time `json:"arrival_time" gorm:"not null"`
	Status        Status    `json:"status" gorm:"type:varchar(20);default:'scheduled'"`

	// Counter invariant: available_seats = total_seats - booked_seats after
	// every committed mutation. Counters move only through the booking
	// lifecycle's conditional updates, never through client requests.
	TotalSeats     int `json:"total_seats" gorm:"not null;check:total_seats >= 0"`
	BookedSeats    int `json:"booked_seats" gorm:"default:0;check:booked_seats >= 0"`
	AvailableSeats int `json:"available_seats" gorm:"not null;check:available_seats >= 0"`

	EconomyFare  float64 `json:"economy_fare" gorm:"not null;check:economy_fare >= 0"`
	BusinessFare float64 `json:"business_fare" gorm:"not null;check:business_fare >= 0"`
	FirstFare    float64 `json:"first_fare" gorm:"not null;check:first_fare >= 0"`

	Seats []Seat `json:"-" gorm:"foreignKey:FlightID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Seat is immutable inventory apart from IsAvailable, which flips to false
// when a confirmed booking claims the seat.
type Seat struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FlightID    uuid.UUID    `json:"flight_id" gorm:"type:uuid;not null;uniqueIndex:idx_flight_seat_number,priority:1"`
	SeatNumber  string       `json:"seat_number" gorm:"not null;size:4;uniqueIndex:idx_flight_seat_number,priority:2"`
	Row         int          `json:"row" gorm:"not null"`
	Letter      string       `json:"letter" gorm:"not null;size:1"`
	CabinClass  CabinClass   `json:"cabin_class" gorm:"type:varchar(10);not null"`
	Position    SeatPosition `json:"position" gorm:"type:varchar(10);not null"`
	ExitRow     bool         `json:"exit_row" gorm:"default:false"`
	Surcharge   float64      `json:"surcharge" gorm:"not null;default:0;check:surcharge >= 0"`
	IsAvailable bool         `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
}

type FlightResponse struct {
	ID             string    `json:"id"`
	FlightNumber   string    `json:"flight_number"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Status         Status    `json:"status"`
	TotalSeats     int       `json:"total_seats"`
	BookedSeats    int       `json:"booked_seats"`
	AvailableSeats int       `json:"available_seats"`
	EconomyFare    float64   `json:"economy_fare"`
	BusinessFare   float64   `json:"business_fare"`
	FirstFare      float64   `json:"first_fare"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateFlightRequest struct {
	FlightNumber  string    `json:"flight_number" binding:"required,min=3,max=10"`
	Origin        string    `json:"origin" binding:"required,min=3,max=64"`
	Destination   string    `json:"destination" binding:"required,min=3,max=64"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	EconomySeats  int       `json:"economy_seats" binding:"min=0,max=500"`
	BusinessSeats int       `json:"business_seats" binding:"min=0,max=100"`
	FirstSeats    int       `json:"first_seats" binding:"min=0,max=50"`
	EconomyFare   float64   `json:"economy_fare" binding:"required,min=0"`
	BusinessFare  float64   `json:"business_fare" binding:"min=0"`
	FirstFare     float64   `json:"first_fare" binding:"min=0"`
}

type FlightListQuery struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
	DateFrom    string `form:"date_from"`
	DateTo      string `form:"date_to"`
	Status      string `form:"status" binding:"omitempty,oneof=scheduled boarding departed cancelled"`
}

type PaginatedFlights struct {
	Flights    []FlightResponse `json:"flights"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

type SeatMapStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
	Locked    int `json:"locked"`
}

type SeatMapResponse struct {
	FlightID string       `json:"flight_id"`
	Seats    []Seat       `json:"seats"`
	Stats    SeatMapStats `json:"stats"`
}

func (f *Flight) ToResponse() FlightResponse {
	return FlightResponse{
		ID:             f.ID.String(),
		FlightNumber:   f.FlightNumber,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		Status:         f.Status,
		TotalSeats:     f.TotalSeats,
		BookedSeats:    f.BookedSeats,
		AvailableSeats: f.AvailableSeats,
		EconomyFare:    f.EconomyFare,
		BusinessFare:   f.BusinessFare,
		FirstFare:      f.FirstFare,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

// FareFor returns the per-passenger base fare for a cabin class.
func (f *Flight) FareFor(class CabinClass) float64 {
	switch class {
	case ClassFirst:
		return f.FirstFare
	case ClassBusiness:
		return f.BusinessFare
	default:
		return f.EconomyFare
	}
}

// HoursUntilDeparture measures remaining time to departure from now.
func (f *Flight) HoursUntilDeparture(now time.Time) float64 {
	return f.DepartureTime.Sub(now).Hours()
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

func (Seat) TableName() string {
	return "seats"
}
