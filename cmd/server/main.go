package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "github.com/Milkwastaken07/DEHA-Rental/internal/api/http"
	"github.com/Milkwastaken07/DEHA-Rental/internal/config"
	"github.com/Milkwastaken07/DEHA-Rental/internal/geocode"
	"github.com/Milkwastaken07/DEHA-Rental/internal/logger"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository/postgres"
	"github.com/Milkwastaken07/DEHA-Rental/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting DEHA Rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Geocoder
	if cfg.Geocoding.UserAgent == "" {
		logger.Warn("Geocoding user agent not configured; Nominatim may reject requests")
	}
	geocoder := geocode.NewClient(
		cfg.Geocoding.BaseURL,
		cfg.Geocoding.UserAgent,
		time.Duration(cfg.Geocoding.TimeoutSeconds)*time.Second,
	)

	// Initialize Services
	propertySvc := service.NewPropertyService(store.PropertyRepository, store.LocationRepository, store.ManagerRepository, geocoder)
	tenantSvc := service.NewTenantService(store.TenantRepository, store.PropertyRepository)
	managerSvc := service.NewManagerService(store.ManagerRepository)
	applicationSvc := service.NewApplicationService(store.ApplicationRepository, store.PropertyRepository, store.TenantRepository, store.LeaseRepository)
	leaseSvc := service.NewLeaseService(store.LeaseRepository, store.PaymentRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(propertySvc, tenantSvc, managerSvc, applicationSvc, leaseSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
