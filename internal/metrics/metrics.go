package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type feedStats struct {
	messages int
	dropped  int
	errors   int
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// feed messages, and evaluation passes, mirroring them to OpenTelemetry
// instruments when telemetry is enabled. A nil Recorder is safe to call.
type Recorder struct {
	mu         sync.Mutex
	providers  map[string]*providerStats
	feed       feedStats
	reconnects int
	otel       *otelInstruments
}

// NewRecorder constructs a Recorder without telemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordFeedMessage tracks one inbound push-channel message. Dropped marks
// messages discarded for being malformed or for an unknown match.
func (r *Recorder) RecordFeedMessage(messageType string, dropped bool, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.feed.messages++
	if dropped {
		r.feed.dropped++
	}
	if err != nil {
		r.feed.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFeedMessage(messageType, dropped, err)
	}
}

// RecordReconnect tracks one push-channel reconnect attempt.
func (r *Recorder) RecordReconnect() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.reconnects++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReconnect()
	}
}

// RecordEvaluationCycle tracks one full evaluation pass over the live set.
func (r *Recorder) RecordEvaluationCycle(duration time.Duration, live, alerted int, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordEvaluation(duration, live, alerted, err)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current in-memory stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// ProviderSnapshot returns a copy of the stats for the provider.
func (r *Recorder) ProviderSnapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok && stats != nil {
		return Snapshot{Calls: stats.calls, Errors: stats.errors, LastCallLatency: stats.lastCallLatency}
	}
	return Snapshot{}
}

// FeedMessages returns the total push-channel messages seen.
func (r *Recorder) FeedMessages() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.feed.messages
}

// FeedDropped returns the count of discarded push-channel messages.
func (r *Recorder) FeedDropped() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.feed.dropped
}

// Reconnects returns the push-channel reconnect attempts seen.
func (r *Recorder) Reconnects() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reconnects
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}
