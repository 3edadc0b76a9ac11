package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "courtmaster-backend/internal/api/http"
	"courtmaster-backend/internal/catalog"
	"courtmaster-backend/internal/config"
	"courtmaster-backend/internal/ledger"
	"courtmaster-backend/internal/logger"
	"courtmaster-backend/internal/repository"
	"courtmaster-backend/internal/repository/memory"
	"courtmaster-backend/internal/repository/postgres"
	"courtmaster-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CourtMaster Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Load venue catalog
	var cat *catalog.Catalog
	if cfg.Venue.CatalogPath != "" {
		cat, err = catalog.Load(cfg.Venue.CatalogPath)
		if err != nil {
			logger.Error("Failed to load venue catalog", "path", cfg.Venue.CatalogPath, "error", err)
			log.Fatalf("Failed to load venue catalog: %v", err)
		}
		logger.Info("Venue catalog loaded", "path", cfg.Venue.CatalogPath, "courts", len(cat.Courts()), "rules", len(cat.Rules()))
	} else {
		cat = catalog.Default()
		logger.Info("Using built-in venue catalog", "courts", len(cat.Courts()))
	}

	// Initialize booking store
	var store repository.BookingStore
	switch cfg.Storage.Type {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
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
		logger.Info("Using in-memory booking store; bookings will not survive a restart")
		store = memory.NewBookingStore()
	}

	// Hydrate the ledger from the persisted snapshot
	led := ledger.New()
	service.Hydrate(context.Background(), led, store)

	// Initialize email notifications
	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName, cfg.Email.FrontDeskEmail)
		logger.Info("SendGrid notifications enabled", "front_desk", cfg.Email.FrontDeskEmail)
	} else {
		logger.Info("SendGrid notifications disabled")
	}

	// Initialize the booking orchestrator
	bookingSvc := service.NewBookingService(cat, led, store, emailSvc, service.Hours{
		OpenHour:  cfg.Venue.OpenHour,
		CloseHour: cfg.Venue.CloseHour,
	})

	// Set up HTTP router
	router := api.NewRouter(
		api.NewBookingHandler(bookingSvc),
		api.NewCatalogHandler(cat),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
