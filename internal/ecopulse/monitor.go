// Package ecopulse records climate readings in a bounded session history,
// raises threshold alerts and saves the history to a timestamped journal.
package ecopulse

import (
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/internal/ledger"
	"github.com/mesh-intelligence/quwatro/internal/observability"
	"github.com/mesh-intelligence/quwatro/internal/store"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Module is the name used in logs and metrics.
const Module = "ecopulse"

// LogFileName is the climate journal inside the data directory.
const LogFileName = "ecopulse_log.txt"

// Analysis pairs a reading with the alerts it raises.
type Analysis struct {
	Reading types.ClimateReading
	Alerts  []types.Alert
}

// Stable reports whether the reading raised no alert.
func (a Analysis) Stable() bool { return len(a.Alerts) == 0 }

// Monitor owns the climate history and its journal.
type Monitor struct {
	store      *store.Store[types.ClimateReading]
	journal    *ledger.Journal
	thresholds types.ClimateThresholds
	clock      clockwork.Clock
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// Config configures a Monitor.
type Config struct {
	Path       string
	Capacity   int
	Thresholds types.ClimateThresholds
	Clock      clockwork.Clock
}

// NewMonitor returns a Monitor. A nil Clock uses the real clock.
func NewMonitor(cfg Config, logger *zap.Logger, metrics *observability.Metrics) *Monitor {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Monitor{
		store: store.New(store.Options[types.ClimateReading]{
			Capacity: cfg.Capacity,
			Mode:     store.SortOnDemand,
		}),
		journal:    ledger.NewJournal(cfg.Path),
		thresholds: cfg.Thresholds,
		clock:      clock,
		logger:     logger.With(zap.String("module", Module)),
		metrics:    metrics,
	}
}

// Record stamps r with the current time, unless already set, and appends it
// to the history. Every value must be finite; rainfall and humidity must
// not be negative. A full history returns types.ErrCapacityExceeded.
func (m *Monitor) Record(r types.ClimateReading) (types.ClimateReading, error) {
	if err := validate(r); err != nil {
		return r, err
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = m.clock.Now()
	}
	if _, err := m.store.Insert(r); err != nil {
		m.metrics.Failed(Module, "insert")
		m.logger.Warn("reading rejected", zap.Error(err))
		return r, err
	}
	m.metrics.Inserted(Module, m.store.Len())
	m.logger.Info("reading recorded",
		zap.Float64("temperature_c", r.Temperature),
		zap.Float64("rainfall_mm", r.Rainfall),
		zap.Float64("humidity_pct", r.Humidity),
	)
	return r, nil
}

func validate(r types.ClimateReading) error {
	if err := field.Finite("temperature", r.Temperature); err != nil {
		return err
	}
	if err := field.NonNegative("rainfall", r.Rainfall); err != nil {
		return err
	}
	return field.NonNegative("humidity", r.Humidity)
}

// Analyze evaluates every reading in the history against the thresholds.
func (m *Monitor) Analyze() []Analysis {
	entries := m.store.All()
	out := make([]Analysis, len(entries))
	for i, r := range entries {
		out[i] = Analysis{Reading: r, Alerts: r.Alerts(m.thresholds)}
	}
	return out
}

// SaveAll appends a block for every reading in the history to the journal
// and returns the number of readings written. The journal is never
// rewritten, so saving twice writes every reading twice.
func (m *Monitor) SaveAll() (int, error) {
	entries := m.store.All()
	if len(entries) == 0 {
		return 0, nil
	}
	var lines []string
	for _, r := range entries {
		lines = append(lines, r.LogBlock()...)
	}
	if err := m.journal.Append(lines...); err != nil {
		m.metrics.Failed(Module, "append")
		m.logger.Error("journal append failed", zap.Error(err))
		return 0, fmt.Errorf("saving climate entries: %w", err)
	}
	m.metrics.Appended(LogFileName, len(entries))
	m.logger.Info("entries saved", zap.Int("count", len(entries)))
	return len(entries), nil
}

// Entries returns a copy of the history in recording order.
func (m *Monitor) Entries() []types.ClimateReading { return m.store.All() }

// Len returns the number of readings held.
func (m *Monitor) Len() int { return m.store.Len() }

// Logs returns the journal lines. A missing journal returns
// types.ErrNotFound.
func (m *Monitor) Logs() ([]string, error) {
	lines, err := m.journal.Lines()
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		m.metrics.Failed(Module, "read")
		m.logger.Error("journal read failed", zap.Error(err))
	}
	return lines, err
}

// Path returns the journal location.
func (m *Monitor) Path() string { return m.journal.Path() }
