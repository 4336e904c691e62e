package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/quwatro/internal/console"
	"github.com/mesh-intelligence/quwatro/internal/ecopulse"
	"github.com/mesh-intelligence/quwatro/internal/observability"
	"github.com/mesh-intelligence/quwatro/internal/paths"
	"github.com/mesh-intelligence/quwatro/internal/quakeguard"
	"github.com/mesh-intelligence/quwatro/internal/tempterra"
	"github.com/mesh-intelligence/quwatro/internal/waver"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// session holds the resolved configuration and the module services for one
// process run. Services are created on first use and live until exit, so
// in-memory history survives moving between menus.
type session struct {
	flags rootFlags
	clock clockwork.Clock

	configDir string
	cfg       types.Config
	logger    *zap.Logger
	metrics   *observability.Metrics

	registry *quakeguard.Registry
	tracker  *waver.Tracker
	hub      *tempterra.Hub
	monitor  *ecopulse.Monitor
}

// open resolves directories, loads the configuration and starts logging.
func (s *session) open() error {
	configDir, err := paths.ResolveConfigDir(s.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	dataDir, err := paths.ResolveDataDir(s.flags.dataDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = dataDir

	logger, err := observability.NewLogger(dataDir, cfg.LogLevel, s.flags.verbose)
	if err != nil {
		return fmt.Errorf("start logger: %w", err)
	}

	s.configDir = configDir
	s.cfg = cfg
	s.logger = logger
	s.metrics = observability.NewMetrics()
	s.logger.Debug("session opened",
		zap.String("config_dir", configDir),
		zap.String("data_dir", dataDir),
	)
	return nil
}

// close writes the metrics textfile, if configured, and flushes the log.
func (s *session) close() error {
	if s.logger == nil {
		return nil
	}
	var errs []error
	if path := s.cfg.MetricsTextfile; path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.cfg.DataDir, path)
		}
		if err := s.metrics.WriteTextfile(path); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}
	if err := s.logger.Sync(); err != nil {
		errs = append(errs, fmt.Errorf("sync log: %w", err))
	}
	s.logger = nil
	return errors.Join(errs...)
}

func (s *session) dataPath(name string) string {
	return filepath.Join(s.cfg.DataDir, name)
}

func (s *session) prompter(cmd *cobra.Command) *console.Prompter {
	return console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

func (s *session) quakeGuard() (*quakeguard.Registry, error) {
	if s.registry == nil {
		r, err := quakeguard.NewRegistry(quakeguard.SeedLocations(), s.logger, s.metrics)
		if err != nil {
			return nil, fmt.Errorf("load registry: %w", err)
		}
		s.registry = r
	}
	return s.registry, nil
}

func (s *session) waVer() *waver.Tracker {
	if s.tracker == nil {
		s.tracker = waver.NewTracker(s.dataPath(waver.LogFileName), s.cfg.WaterThresholdLiters, s.logger, s.metrics)
	}
	return s.tracker
}

func (s *session) tempTerra() *tempterra.Hub {
	if s.hub == nil {
		s.hub = tempterra.NewHub(s.dataPath(tempterra.LogFileName), s.cfg.HeatCapacity, s.logger, s.metrics)
	}
	return s.hub
}

func (s *session) ecoPulse() *ecopulse.Monitor {
	if s.monitor == nil {
		s.monitor = ecopulse.NewMonitor(ecopulse.Config{
			Path:       s.dataPath(ecopulse.LogFileName),
			Capacity:   s.cfg.ClimateCapacity,
			Thresholds: s.cfg.ClimateThresholds(),
			Clock:      s.clock,
		}, s.logger, s.metrics)
	}
	return s.monitor
}
