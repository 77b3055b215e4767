package database

import (
	"skybook/internal/bookings"
	"skybook/internal/cancellation"
	"skybook/internal/flights"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&flights.Flight{},
		&flights.Seat{},
		&bookings.Booking{},
		&bookings.Passenger{},
		&cancellation.Cancellation{},
	)
}
