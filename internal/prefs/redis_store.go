package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"match-alerts-service/internal/domain/alerts"
)

const redisKeyPrefix = "alerts:prefs:"

// RedisStore persists preferences as JSON documents in Redis, one key per
// user. Used when the service runs with shared state across restarts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a store over an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load fetches and decodes the user's preferences document.
func (s *RedisStore) Load(ctx context.Context, userID string) (alerts.AlertPreferences, bool, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return alerts.AlertPreferences{}, false, nil
	}
	if err != nil {
		return alerts.AlertPreferences{}, false, fmt.Errorf("load preferences: %w", err)
	}

	var p alerts.AlertPreferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return alerts.AlertPreferences{}, false, fmt.Errorf("decode preferences: %w", err)
	}
	return p, true, nil
}

// Save encodes and writes the full preferences document.
func (s *RedisStore) Save(ctx context.Context, userID string, p alerts.AlertPreferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+userID, raw, 0).Err(); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
