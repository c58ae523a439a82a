// Package push consumes the asynchronous match-update channel. The channel
// offers no ordering or delivery guarantee; the reconciler's idempotent
// upserts are the correctness backstop, this package only keeps the
// connection alive and the messages flowing.
package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"

	"match-alerts-service/internal/domain"
	"match-alerts-service/internal/metrics"
)

// Sink receives decoded channel payloads. *feed.Reconciler satisfies it.
type Sink interface {
	UpsertLive(m domain.Match) bool
	AppendEvent(matchID string, ev domain.MatchEvent) bool
}

// Config controls the channel endpoint and its reconnect policy: delays
// start at BackoffBase, double per failed attempt, cap at BackoffMax, and
// give up for good after MaxAttempts consecutive failures.
type Config struct {
	URL         string
	BackoffBase time.Duration
	BackoffMax  time.Duration
	MaxAttempts int
}

// Status is a snapshot of the channel's connection health.
type Status struct {
	Connected bool
	Closed    bool
	Attempts  int
	LastError string
}

type dialFunc func(ctx context.Context, url string) (*websocket.Conn, error)

// Channel is a reconnecting consumer of the push feed.
type Channel struct {
	cfg     Config
	sink    Sink
	logger  *slog.Logger
	metrics *metrics.Recorder
	dial    dialFunc

	statusMu sync.RWMutex
	status   Status
}

// NewChannel constructs a Channel feeding the given sink.
func NewChannel(cfg Config, sink Sink, logger *slog.Logger, recorder *metrics.Recorder) *Channel {
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = time.Minute
	}
	return &Channel{
		cfg:     cfg,
		sink:    sink,
		logger:  logger,
		metrics: recorder,
		dial: func(ctx context.Context, url string) (*websocket.Conn, error) {
			conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
			return conn, err
		},
	}
}

// NewBackoff returns the reconnect schedule for the given policy: the Nth
// consecutive failure waits min(base*2^N, cap). Randomization is disabled
// so the schedule is exact.
func NewBackoff(cfg Config) *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.BackoffBase
	bo.MaxInterval = cfg.BackoffMax
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

// Run connects and consumes messages until the context is cancelled or the
// reconnect attempts run out. After that the channel stays closed;
// reopening requires a fresh Run from the caller.
func (c *Channel) Run(ctx context.Context) {
	bo := NewBackoff(c.cfg)
	attempts := 0

	for {
		if ctx.Err() != nil {
			c.setClosed("")
			return
		}

		conn, err := c.dial(ctx, c.cfg.URL)
		if err != nil {
			attempts++
			c.metrics.RecordReconnect()
			c.recordFailure(err, attempts)
			if c.exhausted(attempts) {
				return
			}
			if !sleepCtx(ctx, bo.NextBackOff()) {
				c.setClosed("")
				return
			}
			continue
		}

		attempts = 0
		bo.Reset()
		c.setConnected()
		c.logInfo("push channel connected", slog.String("url", c.cfg.URL))

		readErr := c.readLoop(ctx, conn)
		conn.Close()
		if ctx.Err() != nil {
			c.setClosed("")
			return
		}

		attempts++
		c.metrics.RecordReconnect()
		c.recordFailure(readErr, attempts)
		if c.exhausted(attempts) {
			return
		}
		if !sleepCtx(ctx, bo.NextBackOff()) {
			c.setClosed("")
			return
		}
	}
}

func (c *Channel) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		c.handle(raw)
	}
}

// handle decodes and applies one message. Malformed payloads are dropped
// and counted; they never take the channel down. Match updates require the
// same id and team fields the poll-path mapper does: a team-less snapshot
// would poison the reconciler's team-pair duplicate check.
func (c *Channel) handle(raw []byte) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.metrics.RecordFeedMessage("invalid", true, err)
		c.logWarn("push message dropped: undecodable", err)
		return
	}

	switch msg.Type {
	case TypeMatchUpdate:
		if msg.Match == nil || msg.Match.ID == "" || msg.Match.HomeTeam.Name == "" || msg.Match.AwayTeam.Name == "" {
			c.metrics.RecordFeedMessage(TypeMatchUpdate, true, nil)
			return
		}
		applied := c.sink.UpsertLive(*msg.Match)
		c.metrics.RecordFeedMessage(TypeMatchUpdate, !applied, nil)
	case TypeNewEvent:
		if msg.Event == nil || msg.Event.MatchID == "" || msg.Event.Minute < 0 {
			c.metrics.RecordFeedMessage(TypeNewEvent, true, nil)
			return
		}
		applied := c.sink.AppendEvent(msg.Event.MatchID, domain.MatchEvent{
			Kind:   msg.Event.Kind,
			TeamID: msg.Event.TeamID,
			Minute: msg.Event.Minute,
			Player: msg.Event.Player,
		})
		c.metrics.RecordFeedMessage(TypeNewEvent, !applied, nil)
	default:
		c.metrics.RecordFeedMessage("unknown", true, nil)
	}
}

func (c *Channel) exhausted(attempts int) bool {
	if c.cfg.MaxAttempts <= 0 || attempts < c.cfg.MaxAttempts {
		return false
	}
	c.statusMu.Lock()
	c.status.Connected = false
	c.status.Closed = true
	c.statusMu.Unlock()
	c.logWarn("push channel closed: reconnect attempts exhausted", nil, slog.Int("attempts", attempts))
	return true
}

// Status returns a snapshot of the channel's health.
func (c *Channel) Status() Status {
	c.statusMu.RLock()
	defer c.statusMu.RUnlock()
	return c.status
}

func (c *Channel) setConnected() {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.status.Connected = true
	c.status.Closed = false
	c.status.Attempts = 0
	c.status.LastError = ""
}

func (c *Channel) setClosed(lastErr string) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.status.Connected = false
	c.status.Closed = true
	if lastErr != "" {
		c.status.LastError = lastErr
	}
}

func (c *Channel) recordFailure(err error, attempts int) {
	c.statusMu.Lock()
	c.status.Connected = false
	c.status.Attempts = attempts
	if err != nil {
		c.status.LastError = err.Error()
	}
	c.statusMu.Unlock()
	c.logWarn("push channel disconnected", err, slog.Int("attempt", attempts))
}

func (c *Channel) logInfo(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func (c *Channel) logWarn(msg string, err error, args ...any) {
	if c.logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	c.logger.Warn(msg, args...)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
