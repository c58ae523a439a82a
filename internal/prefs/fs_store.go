package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"context"

	"match-alerts-service/internal/domain/alerts"
)

// FSStore keeps one JSON document per user under a base directory. It is a
// zero-dependency durable backend for single-node deployments without Redis.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a filesystem-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Load reads {basePath}/prefs/{userID}.json.
func (s *FSStore) Load(_ context.Context, userID string) (alerts.AlertPreferences, bool, error) {
	var p alerts.AlertPreferences
	f, err := os.Open(s.path(userID))
	if errors.Is(err, os.ErrNotExist) {
		return p, false, nil
	}
	if err != nil {
		return p, false, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return alerts.AlertPreferences{}, false, fmt.Errorf("decode preferences: %w", err)
	}
	return p, true, nil
}

// Save writes the document via a temp file and rename so a crash mid-write
// never leaves a truncated record.
func (s *FSStore) Save(_ context.Context, userID string, p alerts.AlertPreferences) error {
	dir := filepath.Join(s.basePath, "prefs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(dir, userID+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(userID))
}

func (s *FSStore) path(userID string) string {
	return filepath.Join(s.basePath, "prefs", userID+".json")
}
