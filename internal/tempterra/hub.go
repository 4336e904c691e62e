// Package tempterra computes heat indexes, journals every calculation and
// keeps a bounded, sortable history of results for the session.
package tempterra

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/internal/ledger"
	"github.com/mesh-intelligence/quwatro/internal/observability"
	"github.com/mesh-intelligence/quwatro/internal/store"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Module is the name used in logs and metrics.
const Module = "tempterra"

// LogFileName is the heat-index journal inside the data directory.
const LogFileName = "tempterra_log.txt"

// Hub owns the heat-index history and its journal.
type Hub struct {
	store   *store.Store[types.HeatReading]
	journal *ledger.Journal
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewHub returns a Hub holding at most capacity readings and journaling to
// path.
func NewHub(path string, capacity int, logger *zap.Logger, metrics *observability.Metrics) *Hub {
	return &Hub{
		store: store.New(store.Options[types.HeatReading]{
			Capacity: capacity,
			Mode:     store.SortOnDemand,
			Less:     func(a, b types.HeatReading) bool { return a.HeatIndex < b.HeatIndex },
		}),
		journal: ledger.NewJournal(path),
		logger:  logger.With(zap.String("module", Module)),
		metrics: metrics,
	}
}

// Calculate derives the heat index for temperature (°C) and humidity (%),
// journals the reading and appends it to the history. The journal is
// written before the insert, so a full history still leaves the line in
// the journal and returns types.ErrCapacityExceeded with the reading.
// Non-finite input or negative humidity is rejected before anything is
// written.
func (h *Hub) Calculate(temperature, humidity float64) (types.HeatReading, error) {
	if err := field.Finite("temperature", temperature); err != nil {
		return types.HeatReading{}, err
	}
	if err := field.NonNegative("humidity", humidity); err != nil {
		return types.HeatReading{}, err
	}
	r := types.NewHeatReading(temperature, humidity)

	if err := h.journal.Append(r.LogLine()); err != nil {
		h.metrics.Failed(Module, "append")
		h.logger.Error("journal append failed", zap.Error(err))
		return r, fmt.Errorf("logging heat index: %w", err)
	}
	h.metrics.Appended(LogFileName, 1)

	if _, err := h.store.Insert(r); err != nil {
		h.metrics.Failed(Module, "insert")
		h.logger.Warn("insert rejected", zap.Float64("heat_index", r.HeatIndex), zap.Error(err))
		return r, err
	}
	h.metrics.Inserted(Module, h.store.Len())
	h.logger.Info("heat index recorded",
		zap.Float64("temperature_c", r.Temperature),
		zap.Float64("humidity_pct", r.Humidity),
		zap.Float64("heat_index_c", r.HeatIndex),
	)
	return r, nil
}

// Delete removes the entry at index i, shifting later entries left.
func (h *Hub) Delete(i int) (types.HeatReading, error) {
	r, err := h.store.DeleteAt(i)
	if err != nil {
		h.metrics.Failed(Module, "delete")
		return r, err
	}
	h.metrics.Deleted(Module, h.store.Len())
	h.logger.Info("entry deleted", zap.Int("index", i), zap.Float64("heat_index_c", r.HeatIndex))
	return r, nil
}

// Sort orders the history by heat index, ascending.
func (h *Hub) Sort() { h.store.Sort() }

// Search returns the indices of entries whose heat index equals v once
// rounded to two decimals.
func (h *Hub) Search(v float64) []int {
	v = types.Round2(v)
	return h.store.SearchByValue(func(r types.HeatReading) bool { return r.HeatIndex == v })
}

// Entries returns a copy of the history in its current order.
func (h *Hub) Entries() []types.HeatReading { return h.store.All() }

// Len returns the number of entries.
func (h *Hub) Len() int { return h.store.Len() }

// Logs returns the journal lines. A missing journal returns
// types.ErrNotFound.
func (h *Hub) Logs() ([]string, error) {
	lines, err := h.journal.Lines()
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		h.metrics.Failed(Module, "read")
		h.logger.Error("journal read failed", zap.Error(err))
	}
	return lines, err
}

// Facts returns the climate awareness facts.
func Facts() []string {
	return []string{
		"The Earth is heating up, causing extreme weather and ecosystem disruptions.",
		"Water scarcity affects over 2 billion people due to climate change.",
		"Deforestation increases carbon emissions and destroys habitats.",
		"Switching to renewable energy can reduce global warming.",
		"Rising sea levels threaten coastal communities worldwide.",
	}
}
