// Package sportsfeed is the HTTP client for the upstream sports data API.
// It normalizes upstream records into domain matches and tolerates
// individually malformed records.
package sportsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"match-alerts-service/internal/domain"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches matches from the upstream feed and maps them to domain
// models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a sportsfeed client with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg),
		logger:     logger,
	}
}

// FetchLive retrieves the current in-play matches.
func (c *Client) FetchLive(ctx context.Context) ([]domain.Match, error) {
	return c.fetch(ctx, "/matches/live")
}

// FetchUpcoming retrieves scheduled matches.
func (c *Client) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	return c.fetch(ctx, "/matches/upcoming")
}

func (c *Client) fetch(ctx context.Context, path string) ([]domain.Match, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sportsfeed: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload matchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("sportsfeed: decode response: %w", err)
	}

	matches, dropped := mapMatches(payload.Data)
	if dropped > 0 && c.logger != nil {
		c.logger.Warn("dropped malformed match records",
			slog.String("provider", ProviderName),
			slog.String("path", path),
			slog.Int("dropped", dropped),
		)
	}
	return matches, nil
}

func resolveHTTPClient(cfg Config) httpDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
