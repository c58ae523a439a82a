package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "")
	if got := envOrDefault("TEST_ENV_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv("TEST_ENV_KEY", "value")
	if got := envOrDefault("TEST_ENV_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", time.Minute},
		{"15s", 15 * time.Second},
		{"garbage", time.Minute},
		{"-5s", time.Minute},
		{"0s", time.Minute},
	}
	for _, tc := range cases {
		t.Setenv("TEST_DURATION", tc.raw)
		if got := durationEnvOrDefault("TEST_DURATION", time.Minute); got != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 7},
		{"3", 3},
		{"0", 7},
		{"-2", 7},
		{"NaN", 7},
	}
	for _, tc := range cases {
		t.Setenv("TEST_INT", tc.raw)
		if got := intEnvOrDefault("TEST_INT", 7); got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"false", true, false},
		{"No", true, false},
		{"sometimes", false, false},
		{"sometimes", true, true},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL", tc.raw)
		if got := boolEnvOrDefault("TEST_BOOL", tc.def); got != tc.want {
			t.Fatalf("%q (default %v): expected %v, got %v", tc.raw, tc.def, tc.want, got)
		}
	}
}

func TestListEnv(t *testing.T) {
	t.Setenv("TEST_LIST", "")
	if got := listEnv("TEST_LIST"); got != nil {
		t.Fatalf("expected nil for empty, got %v", got)
	}
	t.Setenv("TEST_LIST", "a, b ,, c ")
	got := listEnv("TEST_LIST")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected list %v", got)
	}
}
