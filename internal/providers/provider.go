package providers

import (
	"context"

	"match-alerts-service/internal/domain"
)

// MatchProvider defines how upstream match data is fetched and normalized.
// FetchLive returns in-play matches; FetchUpcoming returns scheduled ones.
// Providers must drop individual malformed upstream records rather than
// failing the batch.
type MatchProvider interface {
	FetchLive(ctx context.Context) ([]domain.Match, error)
	FetchUpcoming(ctx context.Context) ([]domain.Match, error)
}
