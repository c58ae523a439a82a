package config

import "time"

// Environment variable names.
const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"

	envFeedBaseURL = "SPORTSFEED_BASE_URL"
	envFeedAPIKey  = "SPORTSFEED_API_KEY"
	envFeedTimeout = "SPORTSFEED_TIMEOUT"

	envPushEnabled     = "PUSH_ENABLED"
	envPushURL         = "PUSH_URL"
	envPushBackoffBase = "PUSH_BACKOFF_BASE"
	envPushBackoffMax  = "PUSH_BACKOFF_MAX"
	envPushMaxAttempts = "PUSH_MAX_ATTEMPTS"

	envPrefsBackend = "PREFS_BACKEND"
	envRedisAddr    = "REDIS_ADDR"
	envRedisDB      = "REDIS_DB"
	envDataDir      = "DATA_DIR"

	envMetricsEnabled = "METRICS_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envOtlpEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtlpInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	envCORSOrigins = "CORS_ALLOWED_ORIGINS"
)

// Defaults.
const (
	defaultPort         = "8080"
	defaultPollInterval = 30 * time.Second
	defaultProvider     = "fixture"

	defaultFeedTimeout = 10 * time.Second

	defaultPushBackoffBase = 1 * time.Second
	defaultPushBackoffMax  = 60 * time.Second
	defaultPushMaxAttempts = 10

	defaultPrefsBackend = "memory"
	defaultRedisAddr    = "localhost:6379"
	defaultDataDir      = "data"

	defaultMetricsPort = "9090"
)
