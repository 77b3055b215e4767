package cancellation

import (
	"time"

	"github.com/google/uuid"
)

// Actor identifies who triggered a cancellation.
type Actor string

const (
	ActorUser   Actor = "user"
	ActorSystem Actor = "system"
	ActorAdmin  Actor = "admin"
)

// Cancellation records how a booking was cancelled. Written once, never
// updated; the refund figures are frozen at cancellation time.
type Cancellation struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID        uuid.UUID `gorm:"type:uuid;unique;not null" json:"booking_id"`
	CancelledAt      time.Time `gorm:"not null" json:"cancelled_at"`
	CancelledBy      Actor     `gorm:"type:varchar(10);check:cancelled_by IN ('user', 'system', 'admin');not null" json:"cancelled_by"`
	Reason           string    `gorm:"size:255" json:"reason"`
	RefundPercentage int       `gorm:"not null" json:"refund_percentage"`
	RefundAmount     float64   `gorm:"not null;check:refund_amount >= 0" json:"refund_amount"`
	PenaltyAmount    float64   `gorm:"not null;check:penalty_amount >= 0" json:"penalty_amount"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName sets the table name for Cancellation
func (Cancellation) TableName() string {
	return "cancellations"
}
