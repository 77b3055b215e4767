package bookings

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"skybook/internal/cancellation"
	"skybook/internal/flights"
	"skybook/internal/notifications"
	"skybook/internal/seats"
	"skybook/internal/shared/apperr"
	"skybook/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlightService is the slice of the flights package the lifecycle needs.
type FlightService interface {
	GetFlight(id uuid.UUID) (*flights.Flight, error)
	GetSeatsByNumbers(flightID uuid.UUID, seatNumbers []string) ([]flights.Seat, error)
	MarkSeatsUnavailable(flightID uuid.UUID, seatNumbers []string) error
	MarkSeatsAvailable(flightID uuid.UUID, seatNumbers []string) error
}

// LockService is the slice of the reservation layer the lifecycle needs:
// verifying the caller's holds at creation and clearing them on
// confirmation and cancellation.
type LockService interface {
	GetLockedByHolder(ctx context.Context, flightID uuid.UUID, holder string) ([]seats.SeatLock, error)
	ReleaseSeats(ctx context.Context, flightID uuid.UUID, seatNumbers []string, holder string, admin bool) (*seats.ReleaseResult, error)
}

// CancellationService computes refunds and freezes cancellation records.
type CancellationService interface {
	QuoteRefund(totalPaid float64, hoursUntilDeparture float64) cancellation.Quote
	RecordCancellation(bookingID uuid.UUID, actor cancellation.Actor, reason string, totalPaid, hoursUntilDeparture float64) (*cancellation.Cancellation, error)
	GetByBookingID(bookingID uuid.UUID) (*cancellation.Cancellation, error)
}

// Config carries the lifecycle's timing and pricing rules.
type Config struct {
	PaymentWindow      time.Duration
	MinCancelHours     float64
	TaxRate            float64
	MaxSeatsPerBooking int
	CheckInWindow      time.Duration
}

type Service interface {
	CreateBooking(ctx context.Context, holderID string, req CreateBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID, holderID string, admin bool) (*BookingResponse, error)
	GetBookingByRef(ctx context.Context, ref string, holderID string, admin bool) (*BookingResponse, error)
	GetHolderBookings(ctx context.Context, holderID string, query BookingListQuery) (*PaginatedBookings, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID, holderID string, admin bool) (*BookingResponse, error)
	CancelBooking(ctx context.Context, id uuid.UUID, holderID string, admin bool, reason string) (*CancelBookingResponse, error)
	CheckIn(ctx context.Context, id uuid.UUID, holderID string, admin bool) (*BookingResponse, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) error

	// ExpireBooking is the payment-deadline rollback. Safe to call from
	// the timer, the reconciliation job, and the read path at once; the
	// repository's status guard lets only one caller win.
	ExpireBooking(ctx context.Context, id uuid.UUID) (bool, error)

	// ReconcileExpired settles every pending booking whose deadline has
	// passed. Covers timers lost to a process restart.
	ReconcileExpired(ctx context.Context) (int, error)
}

type service struct {
	repo                Repository
	flightService       FlightService
	lockService         LockService
	cancellationService CancellationService
	scheduler           RollbackScheduler
	producer            notifications.Producer
	cfg                 Config
}

func NewService(
	repo Repository,
	flightService FlightService,
	lockService LockService,
	cancellationService CancellationService,
	scheduler RollbackScheduler,
	producer notifications.Producer,
	cfg Config,
) Service {
	return &service{
		repo:                repo,
		flightService:       flightService,
		lockService:         lockService,
		cancellationService: cancellationService,
		scheduler:           scheduler,
		producer:            producer,
		cfg:                 cfg,
	}
}

func (s *service) CreateBooking(ctx context.Context, holderID string, req CreateBookingRequest) (*BookingResponse, error) {
	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		return nil, apperr.NotFound("invalid flight id %q", req.FlightID)
	}

	seatCount := len(req.Passengers)
	if seatCount > s.cfg.MaxSeatsPerBooking {
		return nil, apperr.PolicyViolation("cannot book more than %d seats per booking", s.cfg.MaxSeatsPerBooking)
	}

	flight, err := s.flightService.GetFlight(flightID)
	if err != nil {
		return nil, err
	}
	if !flight.Status.IsBookable() {
		return nil, apperr.PolicyViolation("flight %s is not open for booking", flight.FlightNumber)
	}
	if flight.HoursUntilDeparture(time.Now()) < s.cfg.MinCancelHours {
		return nil, apperr.PolicyViolation("flight %s departs in less than %.0f hours", flight.FlightNumber, s.cfg.MinCancelHours)
	}

	seatClass := flights.CabinClass(req.SeatClass)
	surcharges, err := s.validateChosenSeats(ctx, flight, seatClass, holderID, req.Passengers)
	if err != nil {
		return nil, err
	}

	ref, err := generateBookingReference()
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	baseFare := flight.FareFor(seatClass) * float64(seatCount)
	addOns := 0.0
	for _, a := range req.AddOns {
		addOns += a.Amount
	}
	tax := roundMoney((baseFare + surcharges) * s.cfg.TaxRate)
	total := roundMoney(baseFare + surcharges + tax + addOns)

	deadline := time.Now().Add(s.cfg.PaymentWindow)

	passengers := make([]Passenger, seatCount)
	for i, p := range req.Passengers {
		passengers[i] = Passenger{
			FullName:   p.FullName,
			SeatNumber: p.SeatNumber,
		}
	}

	booking := &Booking{
		BookingRef:      ref,
		HolderID:        holderID,
		FlightID:        flightID,
		SeatClass:       seatClass,
		SeatCount:       seatCount,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		PaymentDeadline: &deadline,
		BaseFare:        baseFare,
		SeatSurcharges:  surcharges,
		TaxAmount:       tax,
		AddOnsAmount:    addOns,
		TotalAmount:     total,
		ContactEmail:    req.ContactEmail,
		Passengers:      passengers,
	}

	if err := s.repo.CreateWithInventoryHold(ctx, booking); err != nil {
		return nil, err
	}

	// Arm the deferred rollback. If the timer is lost (restart), the
	// reconciliation job and the read path still expire the booking.
	bookingID := booking.ID
	if err := s.scheduler.Schedule(bookingID, deadline, func() {
		if _, err := s.ExpireBooking(context.Background(), bookingID); err != nil {
			logger.GetDefault().ErrorWithContext(context.Background(),
				"rollback timer failed", err, map[string]interface{}{"booking_id": bookingID.String()})
		}
	}); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to arm rollback timer", err,
			map[string]interface{}{"booking_id": bookingID.String()})
	}

	logger.GetDefault().LogBookingCreated(ctx, booking.ID.String(), flightID.String(), holderID)

	resp := booking.ToResponse()
	return &resp, nil
}

// validateChosenSeats checks that every passenger-picked seat exists on
// the flight, belongs to the requested cabin class, and is currently
// locked by the caller. Returns the summed seat surcharges.
func (s *service) validateChosenSeats(ctx context.Context, flight *flights.Flight, seatClass flights.CabinClass, holderID string, passengers []PassengerRequest) (float64, error) {
	var chosen []string
	seen := make(map[string]struct{})
	for _, p := range passengers {
		if p.SeatNumber == "" {
			continue
		}
		if _, dup := seen[p.SeatNumber]; dup {
			return 0, apperr.Conflict("seat %s assigned to more than one passenger", p.SeatNumber)
		}
		seen[p.SeatNumber] = struct{}{}
		chosen = append(chosen, p.SeatNumber)
	}
	if len(chosen) == 0 {
		return 0, nil
	}

	inventory, err := s.flightService.GetSeatsByNumbers(flight.ID, chosen)
	if err != nil {
		return 0, err
	}
	byNumber := make(map[string]flights.Seat, len(inventory))
	for _, seat := range inventory {
		byNumber[seat.SeatNumber] = seat
	}

	locks, err := s.lockService.GetLockedByHolder(ctx, flight.ID, holderID)
	if err != nil {
		return 0, err
	}
	locked := make(map[string]struct{}, len(locks))
	for _, l := range locks {
		locked[l.SeatNumber] = struct{}{}
	}

	surcharges := 0.0
	for _, number := range chosen {
		seat, ok := byNumber[number]
		if !ok {
			return 0, apperr.NotFound("seat %s does not exist on flight %s", number, flight.FlightNumber)
		}
		if seat.CabinClass != seatClass {
			return 0, apperr.PolicyViolation("seat %s is not in %s class", number, seatClass)
		}
		if !seat.IsAvailable {
			return 0, apperr.Conflict("seat %s is already booked", number)
		}
		if _, held := locked[number]; !held {
			return 0, apperr.Conflict("seat %s is not locked by the caller", number)
		}
		surcharges += seat.Surcharge
	}

	return roundMoney(surcharges), nil
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID, holderID string, admin bool) (*BookingResponse, error) {
	booking, err := s.getAuthorized(ctx, id, holderID, admin)
	if err != nil {
		return nil, err
	}

	// Reconcile on read: a pending booking past its deadline is expired
	// even if the rollback timer never fired.
	if booking.DeadlinePassed(time.Now()) {
		if _, err := s.ExpireBooking(ctx, id); err != nil {
			return nil, err
		}
		if booking, err = s.getAuthorized(ctx, id, holderID, admin); err != nil {
			return nil, err
		}
	}

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) GetBookingByRef(ctx context.Context, ref string, holderID string, admin bool) (*BookingResponse, error) {
	booking, err := s.repo.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking %s not found", ref)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking.HolderID != holderID && !admin {
		return nil, apperr.NotAuthorized("booking %s belongs to another holder", ref)
	}
	return s.GetBooking(ctx, booking.ID, holderID, admin)
}

func (s *service) GetHolderBookings(ctx context.Context, holderID string, query BookingListQuery) (*PaginatedBookings, error) {
	bookings, totalCount, err := s.repo.GetByHolder(ctx, holderID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = bookings[i].ToResponse()
	}

	return &PaginatedBookings{
		Bookings:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) ConfirmPayment(ctx context.Context, id uuid.UUID, holderID string, admin bool) (*BookingResponse, error) {
	booking, err := s.getAuthorized(ctx, id, holderID, admin)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if booking.DeadlinePassed(now) {
		if _, err := s.ExpireBooking(ctx, id); err != nil {
			return nil, err
		}
		return nil, apperr.Expired("payment deadline for booking %s has passed", booking.BookingRef)
	}

	won, err := s.repo.ConfirmPayment(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if !won {
		// Classify the failed guard for the caller.
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read booking: %w", err)
		}
		if current.Status == StatusCancelled && current.PaymentStatus == PaymentFailed {
			return nil, apperr.Expired("payment deadline for booking %s has passed", current.BookingRef)
		}
		return nil, apperr.Conflict("booking %s is %s, payment cannot be confirmed", current.BookingRef, current.Status)
	}

	// Payment landed first: disarm the rollback timer.
	s.scheduler.Cancel(id)

	// Chosen seats become permanently booked and their locks disappear.
	if chosen := booking.ChosenSeatNumbers(); len(chosen) > 0 {
		if err := s.flightService.MarkSeatsUnavailable(booking.FlightID, chosen); err != nil {
			return nil, fmt.Errorf("failed to mark seats booked: %w", err)
		}
		if _, err := s.lockService.ReleaseSeats(ctx, booking.FlightID, chosen, booking.HolderID, true); err != nil {
			logger.GetDefault().ErrorWithContext(ctx, "failed to release locks after confirmation", err,
				map[string]interface{}{"booking_id": id.String()})
		}
	}

	s.publishBookingEvent(ctx, booking, notifications.EventBookingConfirmed, "")

	confirmed, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read booking: %w", err)
	}
	resp := confirmed.ToResponse()
	return &resp, nil
}

func (s *service) CancelBooking(ctx context.Context, id uuid.UUID, holderID string, admin bool, reason string) (*CancelBookingResponse, error) {
	booking, err := s.getAuthorized(ctx, id, holderID, admin)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if booking.DeadlinePassed(now) {
		if _, err := s.ExpireBooking(ctx, id); err != nil {
			return nil, err
		}
		return nil, apperr.Conflict("booking %s already expired", booking.BookingRef)
	}

	if !booking.Status.CanBeCancelled() {
		if booking.Status == StatusCancelled {
			// A retry after a partial failure lands here: the earlier
			// attempt flipped the status but may have crashed before
			// freezing the refund figures.
			return s.repairCancellationRecord(ctx, booking, admin, reason)
		}
		return nil, apperr.Conflict("booking %s is %s and cannot be cancelled", booking.BookingRef, booking.Status)
	}

	flight := booking.Flight
	if flight == nil {
		if flight, err = s.flightService.GetFlight(booking.FlightID); err != nil {
			return nil, err
		}
	}
	hours := flight.HoursUntilDeparture(now)
	if hours < s.cfg.MinCancelHours {
		return nil, apperr.PolicyViolation("flight departs in less than %.0f hours, cancellation refused", s.cfg.MinCancelHours)
	}

	wasConfirmed := booking.Status != StatusPending

	won, err := s.repo.MarkCancelled(ctx, id)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, apperr.Conflict("booking %s was already settled", booking.BookingRef)
	}

	s.scheduler.Cancel(id)

	actor := cancellation.ActorUser
	if admin {
		actor = cancellation.ActorAdmin
	}
	if reason == "" {
		reason = "cancelled by " + string(actor)
	}

	record, err := s.cancellationService.RecordCancellation(id, actor, reason, booking.PaidAmount(), hours)
	if err != nil {
		return nil, err
	}

	s.releaseBookingSeats(ctx, booking, wasConfirmed)

	logger.GetDefault().LogBookingCancelled(ctx, id.String(), string(actor), reason)
	s.publishBookingEvent(ctx, booking, notifications.EventBookingCancelled, reason)
	s.publishRefundSettlement(ctx, booking, record)

	return &CancelBookingResponse{
		BookingID:        id.String(),
		BookingRef:       booking.BookingRef,
		Status:           StatusCancelled,
		RefundAmount:     record.RefundAmount,
		RefundPercentage: record.RefundPercentage,
		PenaltyAmount:    record.PenaltyAmount,
	}, nil
}

// repairCancellationRecord handles cancelling an already-cancelled
// booking. A complete earlier cancellation keeps its record and the
// retry conflicts; a booking left cancelled without a record (a crash
// between the status flip and the record write) gets its figures frozen
// now so the refund is not lost.
func (s *service) repairCancellationRecord(ctx context.Context, booking *Booking, admin bool, reason string) (*CancelBookingResponse, error) {
	if _, err := s.cancellationService.GetByBookingID(booking.ID); err == nil {
		return nil, apperr.Conflict("booking %s was already cancelled", booking.BookingRef)
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	flight := booking.Flight
	if flight == nil {
		var err error
		if flight, err = s.flightService.GetFlight(booking.FlightID); err != nil {
			return nil, err
		}
	}
	hours := flight.HoursUntilDeparture(time.Now())

	actor := cancellation.ActorUser
	if admin {
		actor = cancellation.ActorAdmin
	}
	if reason == "" {
		reason = "cancelled by " + string(actor)
	}

	record, err := s.cancellationService.RecordCancellation(booking.ID, actor, reason, booking.PaidAmount(), hours)
	if err != nil {
		return nil, err
	}

	logger.GetDefault().LogBookingCancelled(ctx, booking.ID.String(), string(actor), reason)
	s.publishRefundSettlement(ctx, booking, record)

	return &CancelBookingResponse{
		BookingID:        booking.ID.String(),
		BookingRef:       booking.BookingRef,
		Status:           StatusCancelled,
		RefundAmount:     record.RefundAmount,
		RefundPercentage: record.RefundPercentage,
		PenaltyAmount:    record.PenaltyAmount,
	}, nil
}

func (s *service) CheckIn(ctx context.Context, id uuid.UUID, holderID string, admin bool) (*BookingResponse, error) {
	booking, err := s.getAuthorized(ctx, id, holderID, admin)
	if err != nil {
		return nil, err
	}

	flight := booking.Flight
	if flight == nil {
		if flight, err = s.flightService.GetFlight(booking.FlightID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	if now.Before(flight.DepartureTime.Add(-s.cfg.CheckInWindow)) {
		return nil, apperr.PolicyViolation("check-in opens %v before departure", s.cfg.CheckInWindow)
	}
	if now.After(flight.DepartureTime) {
		return nil, apperr.PolicyViolation("flight %s has already departed", flight.FlightNumber)
	}

	won, err := s.repo.MarkCheckedIn(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, apperr.Conflict("booking %s is %s and cannot check in", booking.BookingRef, booking.Status)
	}

	checkedIn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read booking: %w", err)
	}
	resp := checkedIn.ToResponse()
	return &resp, nil
}

func (s *service) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	won, err := s.repo.MarkNoShow(ctx, id)
	if err != nil {
		return err
	}
	if !won {
		return apperr.Conflict("booking %s cannot be marked no-show", id)
	}
	return nil
}

func (s *service) ExpireBooking(ctx context.Context, id uuid.UUID) (bool, error) {
	won, err := s.repo.MarkExpired(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.NotFound("booking %s not found", id)
		}
		return false, err
	}
	if !won {
		return false, nil
	}

	s.scheduler.Cancel(id)

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return true, fmt.Errorf("failed to re-read expired booking: %w", err)
	}

	// Nothing was paid, so the record carries a zero refund.
	if _, err := s.cancellationService.RecordCancellation(id, cancellation.ActorSystem, "payment timeout", 0, 0); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to record expiry cancellation", err,
			map[string]interface{}{"booking_id": id.String()})
	}

	s.releaseBookingSeats(ctx, booking, false)

	logger.GetDefault().LogBookingExpired(ctx, id.String(), booking.SeatCount)
	s.publishBookingEvent(ctx, booking, notifications.EventBookingCancelled, "payment timeout")

	return true, nil
}

func (s *service) ReconcileExpired(ctx context.Context) (int, error) {
	expired, err := s.repo.FindExpiredPending(ctx, time.Now(), 100)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired bookings: %w", err)
	}

	settled := 0
	for _, booking := range expired {
		won, err := s.ExpireBooking(ctx, booking.ID)
		if err != nil {
			logger.GetDefault().ErrorWithContext(ctx, "failed to expire booking", err,
				map[string]interface{}{"booking_id": booking.ID.String()})
			continue
		}
		if won {
			settled++
		}
	}
	return settled, nil
}

func (s *service) getAuthorized(ctx context.Context, id uuid.UUID, holderID string, admin bool) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking %s not found", id)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking.HolderID != holderID && !admin {
		return nil, apperr.NotAuthorized("booking %s belongs to another holder", id)
	}
	return booking, nil
}

// releaseBookingSeats returns chosen seats to inventory (when a confirmed
// booking had claimed them) and drops any outstanding locks.
func (s *service) releaseBookingSeats(ctx context.Context, booking *Booking, restoreSeatMap bool) {
	chosen := booking.ChosenSeatNumbers()
	if len(chosen) == 0 {
		return
	}

	if restoreSeatMap {
		if err := s.flightService.MarkSeatsAvailable(booking.FlightID, chosen); err != nil {
			logger.GetDefault().ErrorWithContext(ctx, "failed to restore seat availability", err,
				map[string]interface{}{"booking_id": booking.ID.String()})
		}
	}

	if _, err := s.lockService.ReleaseSeats(ctx, booking.FlightID, chosen, booking.HolderID, true); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to release booking locks", err,
			map[string]interface{}{"booking_id": booking.ID.String()})
	}
}

func (s *service) publishBookingEvent(ctx context.Context, booking *Booking, eventType notifications.EventType, reason string) {
	flightNumber := ""
	if booking.Flight != nil {
		flightNumber = booking.Flight.FlightNumber
	}

	event := &notifications.BookingEvent{
		Type:         eventType,
		BookingID:    booking.ID.String(),
		BookingRef:   booking.BookingRef,
		FlightID:     booking.FlightID.String(),
		FlightNumber: flightNumber,
		HolderID:     booking.HolderID,
		Passengers:   booking.SeatCount,
		TotalAmount:  booking.TotalAmount,
		Reason:       reason,
		OccurredAt:   time.Now(),
	}

	// Fire-and-forget: broker trouble never fails the booking flow.
	if err := s.producer.PublishBookingEvent(ctx, event); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to publish booking event", err,
			map[string]interface{}{"booking_ref": booking.BookingRef})
	}
}

func (s *service) publishRefundSettlement(ctx context.Context, booking *Booking, record *cancellation.Cancellation) {
	if record.RefundAmount <= 0 {
		return
	}

	settlement := &notifications.RefundSettlement{
		Type:             notifications.EventRefundSettlement,
		BookingID:        booking.ID.String(),
		BookingRef:       booking.BookingRef,
		HolderID:         booking.HolderID,
		RefundAmount:     record.RefundAmount,
		RefundPercentage: record.RefundPercentage,
		PenaltyAmount:    record.PenaltyAmount,
		OccurredAt:       time.Now(),
	}

	if err := s.producer.PublishRefundSettlement(ctx, settlement); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to publish refund settlement", err,
			map[string]interface{}{"booking_ref": booking.BookingRef})
	}
}

// generateBookingReference builds the human-readable unique reference,
// e.g. SKY-20260829-QJZKXW.
func generateBookingReference() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)
	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("SKY-%s-%s", timestamp, string(randomPart)), nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
