package seats

import "time"

type LockSeatsResponse struct {
	FlightID    string       `json:"flight_id"`
	Holder      string       `json:"holder"`
	LockedSeats []LockedSeat `json:"locked_seats"`
	FailedSeats []FailedSeat `json:"failed_seats"`
	ExpiresAt   time.Time    `json:"expires_at"`
	TTL         int          `json:"ttl_seconds"`
}

type ReleaseSeatsResponse struct {
	FlightID      string       `json:"flight_id"`
	ReleasedSeats []string     `json:"released_seats"`
	FailedSeats   []FailedSeat `json:"failed_seats"`
}

type HeldSeatsResponse struct {
	FlightID string     `json:"flight_id"`
	Holder   string     `json:"holder"`
	Locks    []SeatLock `json:"locks"`
}
