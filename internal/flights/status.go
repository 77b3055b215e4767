package flights

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusBoarding  Status = "boarding"
	StatusDeparted  Status = "departed"
	StatusCancelled Status = "cancelled"
)

// IsBookable reports whether new bookings and seat locks are accepted
// for a flight in this status.
func (s Status) IsBookable() bool {
	return s == StatusScheduled
}
