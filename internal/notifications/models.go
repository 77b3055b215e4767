package notifications

import (
	"encoding/json"
	"time"
)

// EventType identifies the outward-facing event carried by a message.
type EventType string

const (
	EventBookingConfirmed EventType = "booking.confirmed"
	EventBookingCancelled EventType = "booking.cancelled"
	EventRefundSettlement EventType = "refund.settlement"
)

// BookingEvent notifies the external notification collaborator about a
// booking lifecycle change. Fire-and-forget; delivery is out of scope.
type BookingEvent struct {
	Type         EventType `json:"type"`
	BookingID    string    `json:"booking_id"`
	BookingRef   string    `json:"booking_ref"`
	FlightID     string    `json:"flight_id"`
	FlightNumber string    `json:"flight_number"`
	HolderID     string    `json:"holder_id"`
	Passengers   int       `json:"passengers"`
	TotalAmount  float64   `json:"total_amount"`
	Reason       string    `json:"reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// RefundSettlement instructs the external payment collaborator to move
// money. The engine only computes the amount.
type RefundSettlement struct {
	Type             EventType `json:"type"`
	BookingID        string    `json:"booking_id"`
	BookingRef       string    `json:"booking_ref"`
	HolderID         string    `json:"holder_id"`
	RefundAmount     float64   `json:"refund_amount"`
	RefundPercentage int       `json:"refund_percentage"`
	PenaltyAmount    float64   `json:"penalty_amount"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func (r *RefundSettlement) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}
