package cancellation

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(record *Cancellation) error
	GetByBookingID(bookingID uuid.UUID) (*Cancellation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(record *Cancellation) error {
	return r.db.Create(record).Error
}

func (r *repository) GetByBookingID(bookingID uuid.UUID) (*Cancellation, error) {
	var record Cancellation
	if err := r.db.Where("booking_id = ?", bookingID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
