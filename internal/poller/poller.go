// Package poller drives the periodic pull side of the feed: it fetches
// upcoming and live matches on an interval, merges them through the
// reconciler, and runs an evaluation pass over the refreshed live set.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"match-alerts-service/internal/app/matches"
	appprefs "match-alerts-service/internal/app/prefs"
	"match-alerts-service/internal/feed"
	"match-alerts-service/internal/logging"
	"match-alerts-service/internal/metrics"
	"match-alerts-service/internal/providers"
)

const (
	defaultInterval = 30 * time.Second

	// defaultUserID keys the preference record evaluated on each tick.
	defaultUserID = "default"
)

// Poller fetches matches on an interval, reconciles them, and evaluates the
// configured alerts against the result.
type Poller struct {
	provider providers.MatchProvider
	rec      *feed.Reconciler
	matches  *matches.Service
	prefs    *appprefs.Service
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	userID   string

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.MatchProvider, rec *feed.Reconciler, matchSvc *matches.Service, prefSvc *appprefs.Service, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		rec:      rec,
		matches:  matchSvc,
		prefs:    prefSvc,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		userID:   defaultUserID,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	upcoming, upErr := p.provider.FetchUpcoming(ctx)
	p.metrics.RecordProviderAttempt("upcoming", time.Since(start), upErr)
	if upErr == nil {
		for _, m := range upcoming {
			p.rec.UpsertUpcoming(m)
		}
	}

	liveStart := time.Now()
	live, liveErr := p.provider.FetchLive(ctx)
	p.metrics.RecordProviderAttempt("live", time.Since(liveStart), liveErr)
	if liveErr != nil {
		p.logError("poller live fetch failed", liveErr, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(liveErr, start)
		return
	}
	for _, m := range live {
		p.rec.UpsertLive(m)
	}

	alerted := p.evaluate(ctx, len(live))

	p.recordSuccess(start)
	p.logInfo("poller refreshed matches",
		logging.FieldCount, len(live),
		"upcoming", len(upcoming),
		"alerted", alerted,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// evaluate runs one alert pass against the reconciled live set. Evaluation
// reads already-materialized state only; a failed preference load skips the
// pass rather than failing the poll.
func (p *Poller) evaluate(ctx context.Context, live int) int {
	if p.matches == nil || p.prefs == nil {
		return 0
	}

	evalStart := time.Now()
	userPrefs, err := p.prefs.Get(ctx, p.userID)
	if err != nil {
		p.metrics.RecordEvaluationCycle(time.Since(evalStart), live, 0, err)
		p.logError("evaluation skipped: preferences unavailable", err)
		return 0
	}

	alerted := p.matches.EvaluateWith(userPrefs)
	p.metrics.RecordEvaluationCycle(time.Since(evalStart), live, len(alerted), nil)

	for _, am := range alerted {
		p.logInfo("match alertable",
			slog.String(logging.FieldMatchID, am.Match.ID),
			slog.String(logging.FieldSport, am.Match.Sport),
			slog.Int("alerts", len(am.Alerts)),
		)
	}
	return len(alerted)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in
// callers).
func (p *Poller) Provider() providers.MatchProvider {
	return p.provider
}
