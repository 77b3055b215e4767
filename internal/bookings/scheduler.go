package bookings

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// RollbackScheduler arms one deferred task per booking, fired at the
// payment deadline, and cancels it when payment lands first. Timers are
// process-local and lost on restart; the reconciliation job and the
// read-path expiry check cover that gap.
type RollbackScheduler interface {
	Schedule(bookingID uuid.UUID, at time.Time, task func()) error
	Cancel(bookingID uuid.UUID)
	Shutdown() error
}

type gocronScheduler struct {
	sched gocron.Scheduler

	mu   sync.Mutex
	jobs map[uuid.UUID]uuid.UUID // booking id -> job id
}

func NewRollbackScheduler() (RollbackScheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	sched.Start()

	return &gocronScheduler{
		sched: sched,
		jobs:  make(map[uuid.UUID]uuid.UUID),
	}, nil
}

func (s *gocronScheduler) Schedule(bookingID uuid.UUID, at time.Time, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace an existing timer for the same booking.
	if jobID, ok := s.jobs[bookingID]; ok {
		_ = s.sched.RemoveJob(jobID)
		delete(s.jobs, bookingID)
	}

	job, err := s.sched.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(at)),
		gocron.NewTask(func() {
			task()
			s.forget(bookingID)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule rollback: %w", err)
	}

	s.jobs[bookingID] = job.ID()
	return nil
}

func (s *gocronScheduler) Cancel(bookingID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if jobID, ok := s.jobs[bookingID]; ok {
		_ = s.sched.RemoveJob(jobID)
		delete(s.jobs, bookingID)
	}
}

func (s *gocronScheduler) forget(bookingID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, bookingID)
}

func (s *gocronScheduler) Shutdown() error {
	return s.sched.Shutdown()
}
