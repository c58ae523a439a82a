package testutil

import (
	"context"

	"match-alerts-service/internal/domain"
	"match-alerts-service/internal/providers"
)

// GoodProvider returns the provided matches with no error.
type GoodProvider struct {
	Live     []domain.Match
	Upcoming []domain.Match
}

func (p GoodProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	return p.Live, nil
}

func (p GoodProvider) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	return p.Upcoming, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	return nil, p.Err
}

// EmptyProvider returns no matches, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	return []domain.Match{}, nil
}

func (EmptyProvider) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	return []domain.Match{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	return nil, providers.ErrProviderUnavailable
}
