package config

import "time"

// Service names, used for logging and per-service defaults.
const (
	ServiceBookings     = "bookings"
	ServiceAvailability = "availability"
)

const (
	DefaultLogLevel = "info"

	// The gateway listens on 8000 and delegates to the authority on 8001.
	DefaultBookingsPort     = "8000"
	DefaultAvailabilityPort = "8001"

	DefaultAvailabilityServiceURL = "http://localhost:8001"

	// Timeout for the synchronous availability check on create/update.
	DefaultAvailabilityCheckTimeout = 10 * time.Second
	// Short timeout for the best-effort reachability probe.
	DefaultAvailabilityProbeTimeout = 3 * time.Second

	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultRequestTimeout  = 30 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaAuditTopic = "availability-checks"

	// Hard cap on records returned by list endpoints.
	DefaultListLimit = 50
)
