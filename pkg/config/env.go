package config

const (
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvDatabaseDSN = "DATABASE_DSN"

	EnvAvailabilityServiceURL   = "AVAILABILITY_SERVICE_URL"
	EnvAvailabilityCheckTimeout = "AVAILABILITY_CHECK_TIMEOUT"
	EnvAvailabilityProbeTimeout = "AVAILABILITY_PROBE_TIMEOUT"

	EnvRequestTimeout  = "REQUEST_TIMEOUT"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvMaxRequestSize  = "MAX_REQUEST_SIZE"

	EnvKafkaBrokers    = "KAFKA_BROKERS"
	EnvKafkaAuditTopic = "KAFKA_AUDIT_TOPIC"
)
