// Package monitor implements the idle-detection loop: it tracks the last
// developer activity timestamp and records a pause event when activity
// stops for longer than the configured threshold.
package monitor

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// Default monitor timing.
const (
	// DefaultPauseThreshold is the idle gap that counts as a pause.
	DefaultPauseThreshold = 3 * time.Second

	// DefaultPollInterval is how often the loop checks for a pause.
	DefaultPollInterval = 500 * time.Millisecond
)

// pauseTimeFormat is the timestamp layout of session log lines.
const pauseTimeFormat = "2006-01-02 15:04:05"

// Config holds monitor timing and log placement.
type Config struct {
	PauseThreshold time.Duration
	PollInterval   time.Duration
	SessionLogPath string
}

// DefaultConfig returns the standard monitor configuration.
func DefaultConfig() Config {
	return Config{
		PauseThreshold: DefaultPauseThreshold,
		PollInterval:   DefaultPollInterval,
		SessionLogPath: DefaultSessionLogPath,
	}
}

// Monitor tracks developer activity and detects pauses. All state lives on
// the struct; the poll loop is the only writer of pause events, and
// RecordActivity is the only writer of the activity timestamp, so plain
// atomic reads and writes suffice.
type Monitor struct {
	cfg        Config
	logger     *slog.Logger
	sessionLog *SessionLog
	metrics    *Metrics

	// lastActivity is the most recent activity time in unix nanoseconds.
	// It doubles as the freshness signal exposed through Latest.
	lastActivity atomic.Int64

	running atomic.Bool
}

// New creates a stopped Monitor. The last-activity timestamp starts at the
// creation time so a fresh monitor does not immediately report a pause.
func New(cfg Config, logger *slog.Logger, metrics *Metrics) *Monitor {
	if cfg.PauseThreshold <= 0 {
		cfg.PauseThreshold = DefaultPauseThreshold
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	if cfg.SessionLogPath == "" {
		cfg.SessionLogPath = DefaultSessionLogPath
	}

	mon := &Monitor{
		cfg:        cfg,
		logger:     logger,
		sessionLog: NewSessionLog(cfg.SessionLogPath),
		metrics:    metrics,
	}
	mon.lastActivity.Store(time.Now().UnixNano())

	return mon
}

// Start transitions the monitor to tracking and launches the poll loop.
// Starting an already-running monitor is a no-op.
func (m *Monitor) Start() {
	if !m.running.CompareAndSwap(false, true) {
		return
	}

	m.logger.Info("idle monitor started",
		"pause_threshold", m.cfg.PauseThreshold.String(),
		"poll_interval", m.cfg.PollInterval.String(),
	)

	go m.loop()
}

// Stop requests the poll loop to exit. Stopping is best-effort: the loop
// observes the flag between sleeps, so it may lag by up to one poll
// interval (or one pause threshold during a debounce sleep).
func (m *Monitor) Stop() {
	if !m.running.CompareAndSwap(true, false) {
		return
	}

	m.logger.Info("idle monitor stopped")
}

// Running reports whether the poll loop is active.
func (m *Monitor) Running() bool {
	return m.running.Load()
}

// RecordActivity stores the current time as the most recent activity.
func (m *Monitor) RecordActivity() {
	m.lastActivity.Store(time.Now().UnixNano())
	m.metrics.ActivityRecords.Inc()
}

// Latest returns the most recent activity time.
func (m *Monitor) Latest() time.Time {
	return time.Unix(0, m.lastActivity.Load())
}

func (m *Monitor) loop() {
	for m.running.Load() {
		time.Sleep(m.cfg.PollInterval)

		if !m.running.Load() {
			return
		}

		idle := time.Since(m.Latest())
		if idle > m.cfg.PauseThreshold {
			m.onPause(idle)

			// Debounce: one event per pause, not one per poll.
			time.Sleep(m.cfg.PauseThreshold)
		}
	}
}

// onPause records a single pause event. Session log write failures are
// deliberately discarded: the log is advisory and must never disturb the
// loop.
func (m *Monitor) onPause(idle time.Duration) {
	now := time.Now()

	_ = m.sessionLog.Append(now.Format(pauseTimeFormat) + " - Pause detected")

	m.logger.Info("pause detected", "idle", humanize.RelTime(now.Add(-idle), now, "idle", ""))
	m.metrics.PauseEvents.Inc()
}
