package main

import (
	"gorm.io/gorm"

	"roombook/internal/bookings/handler"
	"roombook/internal/bookings/repository"
	"roombook/internal/bookings/service"
	"roombook/internal/bookings/validator"
	"roombook/internal/health"
	"roombook/pkg/app"
	"roombook/pkg/client"
	"roombook/pkg/config"
	"roombook/pkg/database"
	"roombook/pkg/model"
)

func main() {
	cfg := config.Load(config.ServiceBookings)
	cfg.Log.Info("Starting Bookings service")

	db, err := database.Connect(cfg.DatabaseDSN, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db, &model.Booking{}); err != nil {
		cfg.Log.Fatal("Failed to run migrations", "error", err)
	}

	bookingService := initServices(cfg, db)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		health.NewHandler(db, config.ServiceBookings, cfg.Log),
		handler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, db *gorm.DB) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewGormBookingRepository(db)
	availabilityClient := client.NewAvailabilityClient(
		cfg.AvailabilityServiceURL,
		cfg.AvailabilityCheckTimeout,
		cfg.AvailabilityProbeTimeout,
	)

	bookingService := service.NewBookingService(
		bookingRepo,
		availabilityClient,
		bookingValidator,
		cfg,
	)

	cfg.Log.Info("Booking service initialized",
		"database_dsn", cfg.DatabaseDSN,
		"availability_service_url", cfg.AvailabilityServiceURL,
	)
	return bookingService
}
