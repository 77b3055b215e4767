package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skybook/internal/flights"
	"skybook/internal/shared/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// CreateWithInventoryHold persists the booking and decrements the
	// flight's available seats in one transaction. The decrement is a
	// conditional update, so racing bookings for the last seats cannot
	// both commit.
	CreateWithInventoryHold(ctx context.Context, booking *Booking) error

	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByRef(ctx context.Context, ref string) (*Booking, error)
	GetByHolder(ctx context.Context, holderID string, query BookingListQuery) ([]Booking, int64, error)

	// ConfirmPayment flips pending -> confirmed only while the payment
	// window is open. Returns false when the guard lost (already
	// confirmed, cancelled, or expired).
	ConfirmPayment(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)

	// MarkExpired is the rollback half of the payment deadline: it
	// cancels a still-pending booking and restores the flight's seat
	// counters in one transaction. Idempotent; returns false when
	// another path already settled the booking.
	MarkExpired(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkCancelled settles a cancellable booking and restores the seat
	// counters. Shares the status-guard discipline with MarkExpired so
	// a racing timer and manual cancel converge: first wins, second
	// no-ops.
	MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error)

	MarkCheckedIn(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (bool, error)

	FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithInventoryHold(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&flights.Flight{}).
			Where("id = ? AND available_seats >= ? AND status = ?",
				booking.FlightID, booking.SeatCount, flights.StatusScheduled).
			Updates(map[string]interface{}{
				"available_seats": gorm.Expr("available_seats - ?", booking.SeatCount),
				"booked_seats":    gorm.Expr("booked_seats + ?", booking.SeatCount),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to hold flight inventory: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			// The guard lost; read the flight once to say why.
			var flight flights.Flight
			err := tx.Where("id = ?", booking.FlightID).First(&flight).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("flight %s not found", booking.FlightID)
			}
			if err != nil {
				return fmt.Errorf("failed to read flight: %w", err)
			}
			if !flight.Status.IsBookable() {
				return apperr.PolicyViolation("flight %s is not open for booking", flight.FlightNumber)
			}
			return apperr.Conflict("insufficient seats: %d available, %d requested",
				flight.AvailableSeats, booking.SeatCount)
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Passengers").
		Preload("Flight").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByRef(ctx context.Context, ref string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Passengers").
		Preload("Flight").
		Where("booking_ref = ?", ref).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByHolder(ctx context.Context, holderID string, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Booking{}).Where("holder_id = ?", holderID)
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
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

	err := db.Preload("Passengers").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) ConfirmPayment(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ? AND status = ? AND payment_status = ? AND payment_deadline > ?",
			id, StatusPending, PaymentPending, now).
		Updates(map[string]interface{}{
			"status":           StatusConfirmed,
			"payment_status":   PaymentCompleted,
			"payment_deadline": nil,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to confirm payment: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) MarkExpired(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.settleWithInventoryRelease(ctx, id,
		[]Status{StatusPending},
		map[string]interface{}{
			"status":         StatusCancelled,
			"payment_status": PaymentFailed,
			"cancelled_at":   time.Now(),
		})
}

func (r *repository) MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.settleWithInventoryRelease(ctx, id,
		[]Status{StatusPending, StatusConfirmed, StatusTicketed},
		map[string]interface{}{
			"status":       StatusCancelled,
			"cancelled_at": time.Now(),
		})
}

// settleWithInventoryRelease applies the idempotent "mark cancelled,
// release seats" mutation. The status guard and the counter restore
// commit atomically, so whichever of the rollback timer, the
// reconciliation job, or a manual cancel runs first wins and the others
// become no-ops.
func (r *repository) settleWithInventoryRelease(ctx context.Context, id uuid.UUID, fromStatuses []Status, updates map[string]interface{}) (bool, error) {
	won := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&booking).Error
		if err != nil {
			return err
		}

		result := tx.Model(&Booking{}).
			Where("id = ? AND status IN ?", id, fromStatuses).
			Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to update booking status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil // guard lost; someone else settled it
		}

		release := tx.Model(&flights.Flight{}).
			Where("id = ? AND booked_seats >= ?", booking.FlightID, booking.SeatCount).
			Updates(map[string]interface{}{
				"available_seats": gorm.Expr("available_seats + ?", booking.SeatCount),
				"booked_seats":    gorm.Expr("booked_seats - ?", booking.SeatCount),
			})
		if release.Error != nil {
			return fmt.Errorf("failed to release flight inventory: %w", release.Error)
		}

		won = true
		return nil
	})
	return won, err
}

func (r *repository) MarkCheckedIn(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ? AND status IN ?", id, []Status{StatusConfirmed, StatusTicketed}).
		Updates(map[string]interface{}{
			"status":        StatusCheckedIn,
			"checked_in_at": now,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to check in: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) MarkNoShow(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ? AND status IN ?", id, []Status{StatusPending, StatusConfirmed, StatusTicketed}).
		Update("status", StatusNoShow)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark no-show: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Passengers").
		Where("status = ? AND payment_status = ? AND payment_deadline < ?",
			StatusPending, PaymentPending, now).
		Order("payment_deadline ASC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}
