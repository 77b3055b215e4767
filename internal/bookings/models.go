package bookings

import (
	"time"

	"skybook/internal/flights"

	"github.com/google/uuid"
)

// Booking is the aggregate root of the reservation lifecycle. The
// passenger list and seat count are immutable after creation; all later
// changes are status transitions.
type Booking struct {
	ID         uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingRef string             `gorm:"unique;not null;size:20" json:"booking_ref"`
	HolderID   string             `gorm:"index;not null;size:64" json:"holder_id"`
	FlightID   uuid.UUID          `gorm:"type:uuid;index;not null" json:"flight_id"`
	SeatClass  flights.CabinClass `gorm:"type:varchar(10);not null" json:"seat_class"`
	SeatCount  int                `gorm:"not null;check:seat_count > 0" json:"seat_count"`

	Status        Status        `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`

	// Set only while pending; cleared on confirmation.
	PaymentDeadline *time.Time `gorm:"index" json:"payment_deadline,omitempty"`

	BaseFare       float64 `gorm:"not null" json:"base_fare"`
	SeatSurcharges float64 `gorm:"not null;default:0" json:"seat_surcharges"`
	TaxAmount      float64 `gorm:"not null;default:0" json:"tax_amount"`
	AddOnsAmount   float64 `gorm:"not null;default:0" json:"add_ons_amount"`
	TotalAmount    float64 `gorm:"not null" json:"total_amount"`

	ContactEmail string `gorm:"size:255" json:"contact_email"`

	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Passengers []Passenger `json:"passengers,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`

	Flight *flights.Flight `json:"flight,omitempty" gorm:"foreignKey:FlightID;constraint:OnDelete:RESTRICT"`
}

// Passenger belongs to exactly one booking. SeatNumber is empty when the
// passenger did not pick a specific seat.
type Passenger struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	FullName   string    `gorm:"not null;size:255" json:"full_name"`
	SeatNumber string    `gorm:"size:4" json:"seat_number,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for Passenger
func (Passenger) TableName() string {
	return "passengers"
}

// ChosenSeatNumbers lists the specific seats picked by passengers.
func (b *Booking) ChosenSeatNumbers() []string {
	var numbers []string
	for _, p := range b.Passengers {
		if p.SeatNumber != "" {
			numbers = append(numbers, p.SeatNumber)
		}
	}
	return numbers
}

// DeadlinePassed reports whether a pending booking's payment window has
// closed. Reconciliation treats such bookings as expired whether or not
// the rollback timer ever fired.
func (b *Booking) DeadlinePassed(now time.Time) bool {
	return b.Status == StatusPending &&
		b.PaymentStatus == PaymentPending &&
		b.PaymentDeadline != nil &&
		now.After(*b.PaymentDeadline)
}

// PaidAmount is what the holder has actually paid so far.
func (b *Booking) PaidAmount() float64 {
	if b.PaymentStatus == PaymentCompleted || b.PaymentStatus == PaymentRefunded {
		return b.TotalAmount
	}
	return 0
}

func (b *Booking) ToResponse() BookingResponse {
	passengers := make([]PassengerInfo, len(b.Passengers))
	for i, p := range b.Passengers {
		passengers[i] = PassengerInfo{
			FullName:   p.FullName,
			SeatNumber: p.SeatNumber,
		}
	}

	return BookingResponse{
		ID:              b.ID.String(),
		BookingRef:      b.BookingRef,
		FlightID:        b.FlightID.String(),
		SeatClass:       b.SeatClass,
		SeatCount:       b.SeatCount,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		PaymentDeadline: b.PaymentDeadline,
		Passengers:      passengers,
		Pricing: PricingBreakdown{
			BaseFare:       b.BaseFare,
			SeatSurcharges: b.SeatSurcharges,
			TaxAmount:      b.TaxAmount,
			AddOnsAmount:   b.AddOnsAmount,
			TotalAmount:    b.TotalAmount,
		},
		ContactEmail: b.ContactEmail,
		CheckedInAt:  b.CheckedInAt,
		CancelledAt:  b.CancelledAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
