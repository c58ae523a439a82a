package server

import (
	"log/slog"
	"time"

	"match-alerts-service/internal/config"
	"match-alerts-service/internal/providers"
	"match-alerts-service/internal/providers/fixture"
	"match-alerts-service/internal/providers/sportsfeed"
)

// providerFactory assembles the provider with shared wrappers (rate limit +
// retry).
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) providers.MatchProvider {
	base := selectProvider(cfg, f.logger)
	if cfg.Provider == "fixture" || cfg.Provider == "" {
		// Canned data needs neither quota protection nor retries.
		return base
	}
	limited := providers.NewRateLimitedProvider(base, rateLimitInterval(cfg), f.logger)
	return providers.NewRetryingProvider(limited, f.logger, 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.MatchProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "sportsfeed":
		return sportsfeed.NewClient(sportsfeed.Config{
			BaseURL: cfg.Feed.BaseURL,
			APIKey:  cfg.Feed.APIKey,
			Timeout: cfg.Feed.Timeout,
		}, logger)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// rateLimitInterval keeps upstream calls at or below the poll cadence.
func rateLimitInterval(cfg config.Config) time.Duration {
	if cfg.PollInterval > 0 && cfg.PollInterval < time.Minute {
		return cfg.PollInterval
	}
	return time.Minute
}
