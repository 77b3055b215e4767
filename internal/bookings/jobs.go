package bookings

import (
	"context"
	"fmt"
	"time"

	"skybook/pkg/logger"

	"github.com/go-co-op/gocron/v2"
)

// LockSweeper evicts expired seat locks. Implemented by the seats
// service; a no-op for the Redis store where keys expire on their own.
type LockSweeper interface {
	SweepExpired(ctx context.Context) int
}

// JobRunner owns the recurring maintenance jobs: the expired-booking
// reconciler and the seat-lock sweeper.
type JobRunner struct {
	scheduler gocron.Scheduler
	service   Service
	sweeper   LockSweeper
}

func NewJobRunner(service Service, sweeper LockSweeper) (*JobRunner, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create job scheduler: %w", err)
	}
	return &JobRunner{
		scheduler: scheduler,
		service:   service,
		sweeper:   sweeper,
	}, nil
}

// Start registers the recurring jobs and begins running them.
func (r *JobRunner) Start(reconcileInterval, sweepInterval time.Duration) error {
	if _, err := r.scheduler.NewJob(
		gocron.DurationJob(reconcileInterval),
		gocron.NewTask(r.reconcileExpiredBookings),
	); err != nil {
		return fmt.Errorf("failed to register booking reconciler: %w", err)
	}

	if _, err := r.scheduler.NewJob(
		gocron.DurationJob(sweepInterval),
		gocron.NewTask(r.sweepExpiredLocks),
	); err != nil {
		return fmt.Errorf("failed to register lock sweeper: %w", err)
	}

	r.scheduler.Start()
	return nil
}

func (r *JobRunner) Shutdown() error {
	return r.scheduler.Shutdown()
}

func (r *JobRunner) reconcileExpiredBookings() {
	ctx := context.Background()
	settled, err := r.service.ReconcileExpired(ctx)
	if err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "booking reconciliation failed", err, nil)
		return
	}
	if settled > 0 {
		logger.GetDefault().InfoWithContext(ctx, "reconciled expired bookings",
			map[string]interface{}{"settled": settled})
	}
}

func (r *JobRunner) sweepExpiredLocks() {
	r.sweeper.SweepExpired(context.Background())
}
