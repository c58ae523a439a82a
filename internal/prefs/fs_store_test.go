package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"match-alerts-service/internal/domain/alerts"
)

func TestFSStoreRoundTrip(t *testing.T) {
	s := NewFSStore(t.TempDir())
	ctx := context.Background()

	if _, found, err := s.Load(ctx, "u1"); err != nil || found {
		t.Fatalf("expected no record, found=%v err=%v", found, err)
	}

	want := existingPrefs()
	if err := s.Save(ctx, "u1", want); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, found, err := s.Load(ctx, "u1")
	if err != nil || !found {
		t.Fatalf("expected record, found=%v err=%v", found, err)
	}
	if !got.Sports["soccer"] || len(got.CustomAlerts) != 1 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestFSStoreSaveOverwrites(t *testing.T) {
	s := NewFSStore(t.TempDir())
	ctx := context.Background()

	first := existingPrefs()
	if err := s.Save(ctx, "u1", first); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	second := first
	second.Sports = map[string]bool{"basketball": true}
	if err := s.Save(ctx, "u1", second); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, _, err := s.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !got.Sports["basketball"] || got.Sports["soccer"] {
		t.Fatalf("expected overwritten record, got %+v", got.Sports)
	}
}

func TestFSStoreCorruptRecordErrors(t *testing.T) {
	base := t.TempDir()
	s := NewFSStore(base)

	dir := filepath.Join(base, "prefs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "u1.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, _, err := s.Load(context.Background(), "u1"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFSStoreLeavesNoTempFiles(t *testing.T) {
	base := t.TempDir()
	s := NewFSStore(base)
	if err := s.Save(context.Background(), "u1", alerts.Defaults()); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(base, "prefs"))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "u1.json" {
		t.Fatalf("expected only the final record, got %v", entries)
	}
}
