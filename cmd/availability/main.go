package main

import (
	"roombook/internal/availability/handler"
	"roombook/internal/availability/repository"
	"roombook/internal/availability/service"
	"roombook/internal/health"
	"roombook/pkg/app"
	"roombook/pkg/config"
	"roombook/pkg/database"
	"roombook/pkg/events"
	"roombook/pkg/model"
)

func main() {
	cfg := config.Load(config.ServiceAvailability)
	cfg.Log.Info("Starting Availability service")

	db, err := database.Connect(cfg.DatabaseDSN, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db, &model.RoomBooking{}, &model.AvailabilityCheck{}); err != nil {
		cfg.Log.Fatal("Failed to run migrations", "error", err)
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
	if publisher != nil {
		defer publisher.Close()
		cfg.Log.Info("Audit event publishing enabled", "topic", cfg.KafkaAuditTopic)
	}

	repo := repository.NewGormRepository(db)
	svc := service.NewService(repo, publisher, cfg)
	cfg.Log.Info("Availability service initialized", "database_dsn", cfg.DatabaseDSN)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		health.NewHandler(db, config.ServiceAvailability, cfg.Log),
		handler.NewAvailabilityHandler(svc, cfg.Log),
	)
	serverApp.Run()
}
