package main

import (
	"fmt"
	"log"
	"time"

	"skybook/internal/flights"
	"skybook/internal/shared/config"
	"skybook/internal/shared/database"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Skybook Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedFlights(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"cancellations",
		"passengers",
		"bookings",
		"seats",
		"flights",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedFlights creates a handful of flights with full seat maps.
func (s *Seeder) SeedFlights() error {
	repo := flights.NewRepository(s.db.PostgreSQL)

	definitions := []struct {
		number      string
		origin      string
		destination string
		departsIn   time.Duration
		duration    time.Duration
		capacity    flights.CapacityConfig
		economyFare float64
		business    float64
		first       float64
	}{
		{"SB101", "BLR", "DEL", 72 * time.Hour, 2*time.Hour + 45*time.Minute,
			flights.CapacityConfig{Economy: 150, Business: 24, First: 8}, 120, 420, 950},
		{"SB202", "DEL", "BOM", 96 * time.Hour, 2 * time.Hour,
			flights.CapacityConfig{Economy: 162, Business: 16, First: 0}, 95, 360, 0},
		{"SB303", "BOM", "CCU", 30 * time.Hour, 2*time.Hour + 30*time.Minute,
			flights.CapacityConfig{Economy: 180, Business: 0, First: 0}, 80, 0, 0},
		{"SB404", "DEL", "BLR", 6 * time.Hour, 2*time.Hour + 40*time.Minute,
			flights.CapacityConfig{Economy: 120, Business: 24, First: 4}, 140, 480, 1100},
	}

	for _, def := range definitions {
		departure := time.Now().Add(def.departsIn).Truncate(time.Minute)
		total := def.capacity.Total()

		flight := &flights.Flight{
			FlightNumber:   def.number,
			Origin:         def.origin,
			Destination:    def.destination,
			DepartureTime:  departure,
			ArrivalTime:    departure.Add(def.duration),
			Status:         flights.StatusScheduled,
			TotalSeats:     total,
			AvailableSeats: total,
			EconomyFare:    def.economyFare,
			BusinessFare:   def.business,
			FirstFare:      def.first,
		}

		if err := repo.Create(flight); err != nil {
			return fmt.Errorf("failed to create flight %s: %w", def.number, err)
		}

		seatMap := flights.GenerateSeatMap(def.capacity)
		if err := repo.SeedSeats(flight.ID, seatMap); err != nil {
			return fmt.Errorf("failed to seed seats for %s: %w", def.number, err)
		}

		fmt.Printf("  ✈️  %s %s→%s: %d seats\n", def.number, def.origin, def.destination, total)
	}

	return nil
}
