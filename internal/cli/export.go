package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/quwatro/internal/sqlite"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// defaultExportName is the export file inside the data directory when
// --out is not given.
const defaultExportName = "quwatro.db"

func newExportCmd(s *session) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the registry and usage history to SQLite",
		Long: "Write the QuakeGuard registry, the WaVer usage log and the current session's\n" +
			"TempTerra and EcoPulse history to a fresh SQLite database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := out
			if path == "" {
				path = s.dataPath(defaultExportName)
			}
			snap, err := s.snapshot()
			if err != nil {
				return err
			}
			counts, err := sqlite.Export(cmd.Context(), path, snap)
			if err != nil {
				s.metrics.Failed("export", "write")
				s.logger.Error("export failed", zap.String("path", path), zap.Error(err))
				return fmt.Errorf("export: %w: %w", types.ErrWrite, err)
			}
			s.logger.Info("exported session",
				zap.String("path", path),
				zap.Int("locations", counts.Locations),
				zap.Int("water_usage", counts.Usage),
			)

			if s.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), struct {
					Path string `json:"path"`
					sqlite.Counts
				}{path, counts})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Exported to %s\n", path)
			fmt.Fprintf(w, "Locations: %d\nWater usage days: %d\nHeat readings: %d\nClimate readings: %d\n",
				counts.Locations, counts.Usage, counts.Heat, counts.Climate)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output database file (default: <data-dir>/quwatro.db)")
	return cmd
}

// snapshot gathers everything the session can export. A missing usage log
// exports no usage rows.
func (s *session) snapshot() (sqlite.Snapshot, error) {
	registry, err := s.quakeGuard()
	if err != nil {
		return sqlite.Snapshot{}, err
	}
	usage, err := s.waVer().Entries()
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return sqlite.Snapshot{}, fmt.Errorf("read usage log: %w", err)
	}
	return sqlite.Snapshot{
		Locations:  registry.All(),
		Usage:      usage,
		Heat:       s.tempTerra().Entries(),
		Climate:    s.ecoPulse().Entries(),
		Thresholds: s.cfg.ClimateThresholds(),
		ExportedAt: s.clock.Now(),
	}, nil
}
