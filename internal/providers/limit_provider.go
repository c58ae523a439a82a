package providers

import (
	"context"
	"log/slog"
	"time"

	"match-alerts-service/internal/domain"
)

// rateLimitedProvider wraps a MatchProvider and enforces a minimum interval
// between upstream calls. Calls block until the interval elapses to avoid
// exceeding upstream quotas.
type rateLimitedProvider struct {
	next     MatchProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a MatchProvider that limits calls to the
// given interval.
func NewRateLimitedProvider(next MatchProvider, interval time.Duration, logger *slog.Logger) MatchProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchLive(ctx)
}

func (p *rateLimitedProvider) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchUpcoming(ctx)
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
