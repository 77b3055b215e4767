package cancellation

import (
	"errors"
	"fmt"
	"time"

	"skybook/internal/shared/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quote is a refund computation that has not been committed to a booking.
type Quote struct {
	RefundPercentage int     `json:"refund_percentage"`
	RefundAmount     float64 `json:"refund_amount"`
	PenaltyAmount    float64 `json:"penalty_amount"`
}

type Service interface {
	// QuoteRefund prices a hypothetical cancellation at the given moment.
	QuoteRefund(totalPaid float64, hoursUntilDeparture float64) Quote

	// RecordCancellation freezes the refund figures into an immutable
	// record owned by the booking.
	RecordCancellation(bookingID uuid.UUID, actor Actor, reason string, totalPaid, hoursUntilDeparture float64) (*Cancellation, error)

	GetByBookingID(bookingID uuid.UUID) (*Cancellation, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) QuoteRefund(totalPaid float64, hoursUntilDeparture float64) Quote {
	pct := RefundTier(hoursUntilDeparture)
	refund, penalty := ComputeRefund(totalPaid, pct)
	return Quote{
		RefundPercentage: pct,
		RefundAmount:     refund,
		PenaltyAmount:    penalty,
	}
}

func (s *service) RecordCancellation(bookingID uuid.UUID, actor Actor, reason string, totalPaid, hoursUntilDeparture float64) (*Cancellation, error) {
	// The record is immutable and unique per booking. A retry after a
	// partial failure returns the figures already frozen instead of
	// recomputing a second quote.
	existing, err := s.repo.GetByBookingID(bookingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing cancellation record: %w", err)
	}

	quote := s.QuoteRefund(totalPaid, hoursUntilDeparture)

	record := &Cancellation{
		BookingID:        bookingID,
		CancelledAt:      time.Now(),
		CancelledBy:      actor,
		Reason:           reason,
		RefundPercentage: quote.RefundPercentage,
		RefundAmount:     quote.RefundAmount,
		PenaltyAmount:    quote.PenaltyAmount,
	}

	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to record cancellation: %w", err)
	}
	return record, nil
}

func (s *service) GetByBookingID(bookingID uuid.UUID) (*Cancellation, error) {
	record, err := s.repo.GetByBookingID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no cancellation record for booking %s", bookingID)
		}
		return nil, fmt.Errorf("failed to get cancellation record: %w", err)
	}
	return record, nil
}
