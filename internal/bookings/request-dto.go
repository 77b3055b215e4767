package bookings

// CreateBookingRequest opens the lifecycle: a pending booking with a
// payment deadline. Seat numbers are optional per passenger; when given
// they must be locked by the caller beforehand.
type CreateBookingRequest struct {
	FlightID     string             `json:"flight_id" binding:"required,uuid"`
	SeatClass    string             `json:"seat_class" binding:"required,oneof=first business economy"`
	Passengers   []PassengerRequest `json:"passengers" binding:"required,min=1,max=9,dive"`
	ContactEmail string             `json:"contact_email" binding:"required,email"`
	AddOns       []AddOnRequest     `json:"add_ons" binding:"omitempty,dive"`
}

type PassengerRequest struct {
	FullName   string `json:"full_name" binding:"required,min=2,max=255"`
	SeatNumber string `json:"seat_number" binding:"omitempty,seatnumber"`
}

type AddOnRequest struct {
	Name   string  `json:"name" binding:"required,min=2,max=64"`
	Amount float64 `json:"amount" binding:"required,min=0"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=255"`
}

type BookingListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed ticketed checked_in completed cancelled no_show rescheduled"`
}
