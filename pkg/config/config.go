package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"roombook/pkg/logger"
)

type Config struct {
	Service     string
	Port        string
	DatabaseDSN string

	AvailabilityServiceURL   string
	AvailabilityCheckTimeout time.Duration
	AvailabilityProbeTimeout time.Duration

	RequestTimeout  time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxRequestSize  int

	KafkaBrokers    []string
	KafkaAuditTopic string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	// Optional .env for local development; env vars always win.
	_ = godotenv.Load()

	cfg := &Config{
		Service:     serviceName,
		Port:        getEnvStr(EnvPort, defaultPort(serviceName)),
		DatabaseDSN: getEnvStr(EnvDatabaseDSN, serviceName+".db"),

		AvailabilityServiceURL:   getEnvStr(EnvAvailabilityServiceURL, DefaultAvailabilityServiceURL),
		AvailabilityCheckTimeout: getEnvDuration(EnvAvailabilityCheckTimeout, DefaultAvailabilityCheckTimeout),
		AvailabilityProbeTimeout: getEnvDuration(EnvAvailabilityProbeTimeout, DefaultAvailabilityProbeTimeout),

		RequestTimeout:  getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		MaxRequestSize:  getEnvInt(EnvMaxRequestSize, DefaultMaxRequestSize),

		KafkaBrokers:    getEnvList(EnvKafkaBrokers),
		KafkaAuditTopic: getEnvStr(EnvKafkaAuditTopic, DefaultKafkaAuditTopic),

		Log: logger.New(logger.Config{
			Level:   getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:  logger.JSON,
			Service: serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()
	return cfg
}

func defaultPort(serviceName string) string {
	if serviceName == ServiceAvailability {
		return DefaultAvailabilityPort
	}
	return DefaultBookingsPort
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.DatabaseDSN == "" {
		errs = append(errs, "DatabaseDSN cannot be empty")
	}

	if u, err := url.Parse(cfg.AvailabilityServiceURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("AvailabilityServiceURL must be an absolute URL, got: %s", cfg.AvailabilityServiceURL))
	}

	durations := map[string]time.Duration{
		"AvailabilityCheckTimeout": cfg.AvailabilityCheckTimeout,
		"AvailabilityProbeTimeout": cfg.AvailabilityProbeTimeout,
		"RequestTimeout":           cfg.RequestTimeout,
		"ReadTimeout":              cfg.ReadTimeout,
		"WriteTimeout":             cfg.WriteTimeout,
		"IdleTimeout":              cfg.IdleTimeout,
		"ShutdownTimeout":          cfg.ShutdownTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive, got: %s", name, d))
		}
	}

	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaAuditTopic == "" {
		errs = append(errs, "KafkaAuditTopic cannot be empty when KafkaBrokers are set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"database_dsn", cfg.DatabaseDSN,
		"availability_service_url", cfg.AvailabilityServiceURL,
		"availability_check_timeout", cfg.AvailabilityCheckTimeout,
		"availability_probe_timeout", cfg.AvailabilityProbeTimeout,
		"request_timeout", cfg.RequestTimeout,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"kafka_brokers", strings.Join(cfg.KafkaBrokers, ","),
		"kafka_audit_topic", cfg.KafkaAuditTopic,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
