package seats

// Seat locking models (the core reservation flow)
type LockSeatsRequest struct {
	SeatNumbers []string `json:"seat_numbers" binding:"required,min=1,dive,seatnumber"`
}

type ReleaseSeatsRequest struct {
	SeatNumbers []string `json:"seat_numbers" binding:"required,min=1,dive,seatnumber"`
}
