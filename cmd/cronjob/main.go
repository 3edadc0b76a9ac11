package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"courtmaster-backend/internal/catalog"
	"courtmaster-backend/internal/config"
	"courtmaster-backend/internal/jobs"
	"courtmaster-backend/internal/ledger"
	"courtmaster-backend/internal/logger"
	"courtmaster-backend/internal/repository"
	"courtmaster-backend/internal/repository/memory"
	"courtmaster-backend/internal/repository/postgres"
	"courtmaster-backend/internal/scheduler"
	"courtmaster-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'purge-cancelled-bookings', 'daily-booking-report', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CourtMaster Cronjob Runner...", "log_level", cfg.Log.Level)

	// Load venue catalog
	var cat *catalog.Catalog
	if cfg.Venue.CatalogPath != "" {
		cat, err = catalog.Load(cfg.Venue.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load venue catalog: %v", err)
		}
	} else {
		cat = catalog.Default()
	}

	// Initialize booking store
	var store repository.BookingStore
	switch cfg.Storage.Type {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")
		store = postgres.NewBookingStore(db)
	default:
		// Maintenance over an in-memory store only makes sense for dry runs.
		logger.Warn("Using in-memory booking store; jobs will operate on an empty ledger")
		store = memory.NewBookingStore()
	}

	led := ledger.New()
	service.Hydrate(context.Background(), led, store)

	bookingSvc := service.NewBookingService(cat, led, store, nil, service.Hours{
		OpenHour:  cfg.Venue.OpenHour,
		CloseHour: cfg.Venue.CloseHour,
	})

	jobRunner := jobs.NewJobRunner(led, store, bookingSvc, cfg)

	// Run a single job and exit if requested
	if *runOnce != "" {
		switch *runOnce {
		case "purge-cancelled-bookings":
			jobRunner.PurgeCancelledBookings()
		case "daily-booking-report":
			jobRunner.DailyBookingReport()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("Run-once job finished", "job", *runOnce)
		return
	}

	// Otherwise run the scheduler until interrupted
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	sched.Stop()
}
