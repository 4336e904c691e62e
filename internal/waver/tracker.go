// Package waver tracks household water usage in an append-only daily log
// and flags days above a usage threshold.
package waver

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/quwatro/internal/aggregate"
	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/internal/ledger"
	"github.com/mesh-intelligence/quwatro/internal/observability"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Module is the name used in logs and metrics.
const Module = "waver"

// LogFileName is the usage log inside the data directory.
const LogFileName = "usage.txt"

// Tracker appends daily usage to the log and summarizes it on demand.
// Nothing is kept in memory between calls.
type Tracker struct {
	log       *ledger.Log[types.WaterUsage]
	threshold float64
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// NewTracker returns a Tracker over the usage log at path. Days whose
// total is strictly above threshold are high-usage days.
func NewTracker(path string, threshold float64, logger *zap.Logger, metrics *observability.Metrics) *Tracker {
	return &Tracker{
		log:       ledger.NewLog[types.WaterUsage](path, usageCodec{}),
		threshold: threshold,
		logger:    logger.With(zap.String("module", Module)),
		metrics:   metrics,
	}
}

// Threshold returns the high-usage threshold in liters.
func (t *Tracker) Threshold() float64 { return t.threshold }

// Path returns the usage log location.
func (t *Tracker) Path() string { return t.log.Path() }

// Log validates and appends u. It reports whether the day's total exceeds
// the threshold.
func (t *Tracker) Log(u types.WaterUsage) (bool, error) {
	date, err := field.LogKey("date", u.Date)
	if err != nil {
		return false, err
	}
	u.Date = date
	for _, c := range types.UsageCategories {
		if err := field.NonNegative(c.String(), u.Liters[c]); err != nil {
			return false, err
		}
	}

	if err := t.log.Append(u); err != nil {
		t.metrics.Failed(Module, "append")
		t.logger.Error("usage append failed", zap.String("date", u.Date), zap.Error(err))
		return false, fmt.Errorf("logging usage for %s: %w", u.Date, err)
	}
	t.metrics.Appended(LogFileName, 1)

	breach := u.Total() > t.threshold
	t.logger.Info("usage logged",
		zap.String("date", u.Date),
		zap.Float64("total_liters", u.Total()),
		zap.Bool("high_usage", breach),
	)
	return breach, nil
}

// Entries replays every well-formed day from the log. A missing log
// returns types.ErrNotFound.
func (t *Tracker) Entries() ([]types.WaterUsage, error) {
	entries, err := t.log.ReadAll()
	if err != nil {
		return nil, t.readFailed(err)
	}
	return entries, nil
}

// Summary replays the log into count, grand total and breaching days.
func (t *Tracker) Summary() (aggregate.Summary[types.WaterUsage], error) {
	s, err := aggregate.Replay(t.log, types.WaterUsage.Total, t.threshold)
	if err != nil {
		return s, t.readFailed(err)
	}
	return s, nil
}

// HighUsageDays returns every logged day above the threshold, in log order.
func (t *Tracker) HighUsageDays() ([]types.WaterUsage, error) {
	s, err := t.Summary()
	if err != nil {
		return nil, err
	}
	return s.Breaches, nil
}

func (t *Tracker) readFailed(err error) error {
	if !errors.Is(err, types.ErrNotFound) {
		t.metrics.Failed(Module, "read")
		t.logger.Error("usage replay failed", zap.Error(err))
	}
	return err
}

// Tips returns the water-saving advice shown after a high-usage day.
func Tips() []string {
	return []string{
		"Fix leaks promptly.",
		"Take shorter showers.",
		"Use low-flow faucets.",
		"Run full loads for laundry and dishes.",
		"Water plants early to reduce evaporation.",
		"Reuse rainwater for irrigation.",
		"Turn off taps while brushing.",
		"Sweep instead of hosing outdoor areas.",
	}
}
