package bookings

// Status is the booking lifecycle state machine:
//
//	pending -> confirmed | ticketed -> checked_in -> completed
//
// cancelled and no_show are reachable from pending, confirmed and
// ticketed; rescheduled from confirmed and ticketed. Terminal states
// accept no further transitions.
type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusTicketed    Status = "ticketed"
	StatusCheckedIn   Status = "checked_in"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusTicketed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusTicketed, StatusCheckedIn, StatusCancelled, StatusNoShow, StatusRescheduled},
	StatusTicketed:  {StatusCheckedIn, StatusCancelled, StatusNoShow, StatusRescheduled},
	StatusCheckedIn: {StatusCompleted},
}

// CanTransition reports whether the state machine permits from -> to.
func (s Status) CanTransition(to Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusTicketed, StatusCheckedIn,
		StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

// CanBeCancelled reports whether a booking in this status may still be
// cancelled.
func (s Status) CanBeCancelled() bool {
	return s.CanTransition(StatusCancelled)
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// PaymentStatus tracks the payment side of a booking independently of
// the lifecycle status.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)
