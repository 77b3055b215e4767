// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"skybook/internal/bookings"
	"skybook/internal/cancellation"
	"skybook/internal/flights"
	"skybook/internal/notifications"
	"skybook/internal/seats"
	"skybook/internal/shared/config"
	"skybook/internal/shared/database"
	"skybook/pkg/cache"
	"skybook/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "skybook/docs"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB

	// Cross-package wiring
	flightService       flights.Service
	seatService         seats.Service
	cancellationService cancellation.Service
	bookingService      bookings.Service

	producer          notifications.Producer
	rollbackScheduler bookings.RollbackScheduler
	jobRunner         *bookings.JobRunner
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) error {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Flights first: seats and bookings depend on the flight service.
		r.setupFlightRoutes(api)
		r.setupSeatRoutes(api)
		if err := r.setupBookingRoutes(api); err != nil {
			return err
		}
		r.setupCancellationRoutes(api)
	}

	return r.startJobs()
}

// Shutdown stops the background jobs and flushes the event producer.
func (r *Router) Shutdown() {
	appLogger := logger.GetDefault()

	if r.jobRunner != nil {
		if err := r.jobRunner.Shutdown(); err != nil {
			appLogger.WithError(err).Error("failed to stop job runner")
		}
	}
	if r.rollbackScheduler != nil {
		if err := r.rollbackScheduler.Shutdown(); err != nil {
			appLogger.WithError(err).Error("failed to stop rollback scheduler")
		}
	}
	if r.producer != nil {
		if err := r.producer.Close(); err != nil {
			appLogger.WithError(err).Error("failed to close event producer")
		}
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "skybook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "skybook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupFlightRoutes configures flight and seat map routes
func (r *Router) setupFlightRoutes(rg *gin.RouterGroup) {
	flightRepo := flights.NewRepository(r.db.GetPostgreSQL())
	flightService := flights.NewService(flightRepo)

	if redisClient := r.db.GetRedisClient(); redisClient != nil {
		flightService.SetCacheService(cache.NewService(redisClient))
	}

	r.flightService = flightService

	flightController := flights.NewController(flightService)
	flights.SetupFlightRoutes(rg, flightController)
}

// setupSeatRoutes configures seat locking routes. The lock store backend
// is picked from config: Redis shares locks across instances, memory
// serves single-instance deployments and tests.
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	appLogger := logger.GetDefault()

	var store seats.LockStore
	redisClient := r.db.GetRedisClient()
	if r.config.Reservation.LockBackend == "redis" && redisClient != nil {
		store = seats.NewRedisLockStore(redisClient)
		appLogger.Info("seat lock store: redis")
	} else {
		store = seats.NewMemoryLockStore()
		appLogger.Info("seat lock store: memory")
	}

	seatService := seats.NewService(store, r.flightService,
		r.config.Reservation.SeatLockTTL, r.config.Reservation.MaxSeatsPerRequest)
	r.seatService = seatService

	// Seat map availability stats count live locks.
	r.flightService.SetLockCounter(seatService)

	seatController := seats.NewController(seatService)
	seats.SetupSeatRoutes(rg, seatController)
}

// setupBookingRoutes configures the booking lifecycle routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) error {
	cancellationRepo := cancellation.NewRepository(r.db.GetPostgreSQL())
	r.cancellationService = cancellation.NewService(cancellationRepo)

	rollbackScheduler, err := bookings.NewRollbackScheduler()
	if err != nil {
		return err
	}
	r.rollbackScheduler = rollbackScheduler

	producer, err := r.buildProducer()
	if err != nil {
		return err
	}
	r.producer = producer

	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(
		bookingRepo,
		r.flightService,
		r.seatService,
		r.cancellationService,
		rollbackScheduler,
		producer,
		bookings.Config{
			PaymentWindow:      r.config.Reservation.PaymentWindow,
			MinCancelHours:     r.config.Reservation.MinCancelHours,
			TaxRate:            r.config.Reservation.TaxRate,
			MaxSeatsPerBooking: r.config.Reservation.MaxSeatsPerRequest,
			CheckInWindow:      48 * time.Hour,
		},
	)
	r.bookingService = bookingService

	bookingController := bookings.NewController(bookingService)
	bookings.SetupBookingRoutes(rg, bookingController)
	return nil
}

// setupCancellationRoutes configures cancellation record lookup routes
func (r *Router) setupCancellationRoutes(rg *gin.RouterGroup) {
	cancellationController := cancellation.NewController(r.cancellationService)
	cancellation.SetupCancellationRoutes(rg, cancellationController)
}

func (r *Router) buildProducer() (notifications.Producer, error) {
	if !r.config.Kafka.Enabled {
		logger.GetDefault().Info("kafka disabled, booking events are dropped")
		return notifications.NewNoopProducer(), nil
	}

	return notifications.NewKafkaProducer(&notifications.ProducerConfig{
		Brokers:           r.config.Kafka.Brokers,
		NotificationTopic: r.config.Kafka.NotificationTopic,
		SettlementTopic:   r.config.Kafka.SettlementTopic,
	})
}

// startJobs launches the expired-booking reconciler and lock sweeper.
func (r *Router) startJobs() error {
	jobRunner, err := bookings.NewJobRunner(r.bookingService, r.seatService)
	if err != nil {
		return err
	}
	if err := jobRunner.Start(
		r.config.Reservation.ReconcileInterval,
		r.config.Reservation.LockSweepInterval,
	); err != nil {
		return err
	}
	r.jobRunner = jobRunner
	return nil
}
