package bookings

import (
	"time"

	"skybook/internal/flights"
)

type BookingResponse struct {
	ID              string             `json:"id"`
	BookingRef      string             `json:"booking_ref"`
	FlightID        string             `json:"flight_id"`
	SeatClass       flights.CabinClass `json:"seat_class"`
	SeatCount       int                `json:"seat_count"`
	Status          Status             `json:"status"`
	PaymentStatus   PaymentStatus      `json:"payment_status"`
	PaymentDeadline *time.Time         `json:"payment_deadline,omitempty"`
	Passengers      []PassengerInfo    `json:"passengers"`
	Pricing         PricingBreakdown   `json:"pricing"`
	ContactEmail    string             `json:"contact_email"`
	CheckedInAt     *time.Time         `json:"checked_in_at,omitempty"`
	CancelledAt     *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type PassengerInfo struct {
	FullName   string `json:"full_name"`
	SeatNumber string `json:"seat_number,omitempty"`
}

type PricingBreakdown struct {
	BaseFare       float64 `json:"base_fare"`
	SeatSurcharges float64 `json:"seat_surcharges"`
	TaxAmount      float64 `json:"tax_amount"`
	AddOnsAmount   float64 `json:"add_ons_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

type CancelBookingResponse struct {
	BookingID        string  `json:"booking_id"`
	BookingRef       string  `json:"booking_ref"`
	Status           Status  `json:"status"`
	RefundAmount     float64 `json:"refund_amount"`
	RefundPercentage int     `json:"refund_percentage"`
	PenaltyAmount    float64 `json:"penalty_amount"`
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
