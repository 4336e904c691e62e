// Package quakeguard implements the earthquake risk registry: an unbounded,
// alphabetically ordered store of locations keyed by name.
package quakeguard

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/internal/observability"
	"github.com/mesh-intelligence/quwatro/internal/store"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Module is the name used in logs and metrics.
const Module = "quakeguard"

// Registry holds locations sorted case-insensitively by name. Names are
// unique regardless of case.
type Registry struct {
	store   *store.Store[types.Location]
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewRegistry returns a registry holding seed. Seed entries with a
// duplicate or blank name are rejected with an error.
func NewRegistry(seed []types.Location, logger *zap.Logger, metrics *observability.Metrics) (*Registry, error) {
	coll := collate.New(language.English, collate.IgnoreCase)
	r := &Registry{
		store: store.New(store.Options[types.Location]{
			Mode:   store.SortAuto,
			Key:    func(l types.Location) string { return l.Name },
			Unique: true,
			Less: func(a, b types.Location) bool {
				return coll.CompareString(a.Name, b.Name) < 0
			},
		}),
		logger:  logger.With(zap.String("module", Module)),
		metrics: metrics,
	}
	for _, l := range seed {
		if err := r.insert(l); err != nil {
			return nil, fmt.Errorf("seeding registry: %w", err)
		}
	}
	r.logger.Debug("registry seeded", zap.Int("locations", r.store.Len()))
	return r, nil
}

// Add validates loc and inserts it at its alphabetical position.
func (r *Registry) Add(loc types.Location) error {
	if err := r.insert(loc); err != nil {
		r.metrics.Failed(Module, "add")
		r.logger.Warn("add rejected", zap.String("name", loc.Name), zap.Error(err))
		return err
	}
	r.logger.Info("location added", zap.String("name", loc.Name), zap.String("risk", string(loc.Risk)))
	return nil
}

func (r *Registry) insert(loc types.Location) error {
	name, err := field.Key("location name", loc.Name)
	if err != nil {
		return err
	}
	loc.Name = name
	if _, err := r.store.Insert(loc); err != nil {
		return fmt.Errorf("location %q: %w", name, err)
	}
	r.metrics.Inserted(Module, r.store.Len())
	return nil
}

// Search returns the location whose name matches, ignoring case.
func (r *Registry) Search(name string) (types.Location, bool) {
	loc, _, ok := r.store.SearchByKey(name)
	return loc, ok
}

// FilterByRisk returns the locations at the given risk level in
// alphabetical order.
func (r *Registry) FilterByRisk(level types.RiskLevel) []types.Location {
	return r.store.Filter(func(l types.Location) bool { return l.Risk == level })
}

// All returns every location in alphabetical order.
func (r *Registry) All() []types.Location {
	return r.store.All()
}

// Len returns the number of locations.
func (r *Registry) Len() int { return r.store.Len() }

// Delete removes the named location. It returns types.ErrNotFound when no
// location matches.
func (r *Registry) Delete(name string) (types.Location, error) {
	_, i, ok := r.store.SearchByKey(name)
	if !ok {
		return types.Location{}, fmt.Errorf("location %q: %w", name, types.ErrNotFound)
	}
	loc, err := r.store.DeleteAt(i)
	if err != nil {
		r.metrics.Failed(Module, "delete")
		return types.Location{}, err
	}
	r.metrics.Deleted(Module, r.store.Len())
	r.logger.Info("location deleted", zap.String("name", loc.Name))
	return loc, nil
}
