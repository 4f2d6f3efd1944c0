package config

import (
	"strings"
	"testing"
	"time"

	"roombook/pkg/logger"
)

func validConfig() *Config {
	return &Config{
		Service:     ServiceBookings,
		Port:        DefaultBookingsPort,
		DatabaseDSN: "bookings.db",

		AvailabilityServiceURL:   DefaultAvailabilityServiceURL,
		AvailabilityCheckTimeout: DefaultAvailabilityCheckTimeout,
		AvailabilityProbeTimeout: DefaultAvailabilityProbeTimeout,

		RequestTimeout:  DefaultRequestTimeout,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxRequestSize:  DefaultMaxRequestSize,

		KafkaAuditTopic: DefaultKafkaAuditTopic,

		Log: logger.New(logger.Config{Level: logger.ERROR, Format: logger.JSON, Service: "test"}),
	}
}

func TestValidate_Defaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("default configuration must validate, got: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"non-numeric port", func(c *Config) { c.Port = "abc" }, "Port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "Port"},
		{"empty dsn", func(c *Config) { c.DatabaseDSN = "" }, "DatabaseDSN"},
		{"relative authority url", func(c *Config) { c.AvailabilityServiceURL = "localhost:8001" }, "AvailabilityServiceURL"},
		{"zero check timeout", func(c *Config) { c.AvailabilityCheckTimeout = 0 }, "AvailabilityCheckTimeout"},
		{"negative shutdown timeout", func(c *Config) { c.ShutdownTimeout = -time.Second }, "ShutdownTimeout"},
		{"zero max request size", func(c *Config) { c.MaxRequestSize = 0 }, "MaxRequestSize"},
		{"brokers without topic", func(c *Config) { c.KafkaBrokers = []string{"localhost:9092"}; c.KafkaAuditTopic = "" }, "KafkaAuditTopic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error to mention %s, got: %v", tt.want, err)
			}
		})
	}
}

func TestDefaultPort_PerService(t *testing.T) {
	if got := defaultPort(ServiceBookings); got != DefaultBookingsPort {
		t.Errorf("expected %s, got %s", DefaultBookingsPort, got)
	}
	if got := defaultPort(ServiceAvailability); got != DefaultAvailabilityPort {
		t.Errorf("expected %s, got %s", DefaultAvailabilityPort, got)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("ROOMBOOK_TEST_STR", "value")
	if got := getEnvStr("ROOMBOOK_TEST_STR", "fallback"); got != "value" {
		t.Errorf("expected env value, got %s", got)
	}
	if got := getEnvStr("ROOMBOOK_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %s", got)
	}

	t.Setenv("ROOMBOOK_TEST_DUR", "15s")
	if got := getEnvDuration("ROOMBOOK_TEST_DUR", time.Second); got != 15*time.Second {
		t.Errorf("expected 15s, got %s", got)
	}
	t.Setenv("ROOMBOOK_TEST_DUR_BAD", "soon")
	if got := getEnvDuration("ROOMBOOK_TEST_DUR_BAD", time.Second); got != time.Second {
		t.Errorf("malformed duration must fall back, got %s", got)
	}

	t.Setenv("ROOMBOOK_TEST_INT", "2048")
	if got := getEnvInt("ROOMBOOK_TEST_INT", 1); got != 2048 {
		t.Errorf("expected 2048, got %d", got)
	}
	t.Setenv("ROOMBOOK_TEST_INT_BAD", "big")
	if got := getEnvInt("ROOMBOOK_TEST_INT_BAD", 1); got != 1 {
		t.Errorf("malformed int must fall back, got %d", got)
	}

	t.Setenv("ROOMBOOK_TEST_LIST", "a, b ,,c")
	list := getEnvList("ROOMBOOK_TEST_LIST")
	if len(list) != 3 || list[0] != "a" || list[1] != "b" || list[2] != "c" {
		t.Errorf("expected trimmed [a b c], got %v", list)
	}
	if got := getEnvList("ROOMBOOK_TEST_LIST_UNSET"); got != nil {
		t.Errorf("expected nil for unset list, got %v", got)
	}
}
