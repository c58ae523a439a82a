package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"match-alerts-service/internal/domain"
)

type countingProvider struct {
	calls int
}

func (p *countingProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	p.calls++
	return []domain.Match{{ID: "m1"}}, nil
}

func (p *countingProvider) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	return p.FetchLive(ctx)
}

func TestRateLimitedProviderWaitsForTick(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, 10*time.Millisecond, nil)
	if rl, ok := p.(*rateLimitedProvider); ok {
		defer rl.Close()
	}

	start := time.Now()
	matches, err := p.FetchLive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || inner.calls != 1 {
		t.Fatalf("expected one delegated call, got %v calls=%d", matches, inner.calls)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Fatalf("expected the call to wait for the interval")
	}
}

func TestRateLimitedProviderHonorsContext(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, time.Hour, nil)
	if rl, ok := p.(*rateLimitedProvider); ok {
		defer rl.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.FetchUpcoming(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if inner.calls != 0 {
		t.Fatalf("expected no delegated call, got %d", inner.calls)
	}
}

func TestRateLimitedProviderNilGuards(t *testing.T) {
	p := &rateLimitedProvider{}
	if _, err := p.FetchLive(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	var nilProvider *rateLimitedProvider
	nilProvider.Close()
}
