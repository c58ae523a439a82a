package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval time.Duration
	Provider     string
	CORSOrigins  []string
	Feed         FeedConfig
	Push         PushConfig
	Prefs        PrefsConfig
	Metrics      MetricsConfig
}

// FeedConfig points at the upstream sports data API.
type FeedConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// PushConfig controls the push-channel client and its reconnect policy.
type PushConfig struct {
	Enabled     bool
	URL         string
	BackoffBase time.Duration
	BackoffMax  time.Duration
	MaxAttempts int
}

// PrefsConfig selects the preference store backend.
type PrefsConfig struct {
	Backend   string // memory|redis|fs
	RedisAddr string
	RedisDB   int
	DataDir   string
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		CORSOrigins:  listEnv(envCORSOrigins),
		Feed: FeedConfig{
			BaseURL: envOrDefault(envFeedBaseURL, ""),
			APIKey:  envOrDefault(envFeedAPIKey, ""),
			Timeout: durationEnvOrDefault(envFeedTimeout, defaultFeedTimeout),
		},
		Push: PushConfig{
			Enabled:     boolEnvOrDefault(envPushEnabled, false),
			URL:         envOrDefault(envPushURL, ""),
			BackoffBase: durationEnvOrDefault(envPushBackoffBase, defaultPushBackoffBase),
			BackoffMax:  durationEnvOrDefault(envPushBackoffMax, defaultPushBackoffMax),
			MaxAttempts: intEnvOrDefault(envPushMaxAttempts, defaultPushMaxAttempts),
		},
		Prefs: PrefsConfig{
			Backend:   envOrDefault(envPrefsBackend, defaultPrefsBackend),
			RedisAddr: envOrDefault(envRedisAddr, defaultRedisAddr),
			RedisDB:   intEnvOrDefault(envRedisDB, 0),
			DataDir:   envOrDefault(envDataDir, defaultDataDir),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsEnabled, false),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			ServiceName:  "match-alerts-service",
			OtlpEndpoint: envOrDefault(envOtlpEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtlpInsecure, false),
		},
	}
}
