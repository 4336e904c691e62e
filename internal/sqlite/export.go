package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Snapshot is everything a session can export. Usage comes from the usage
// log; the other slices are the in-memory stores.
type Snapshot struct {
	Locations  []types.Location
	Usage      []types.WaterUsage
	Heat       []types.HeatReading
	Climate    []types.ClimateReading
	Thresholds types.ClimateThresholds
	ExportedAt time.Time
}

// Counts reports the rows written per table.
type Counts struct {
	Locations int `json:"locations"`
	Usage     int `json:"water_usage"`
	Heat      int `json:"heat_readings"`
	Climate   int `json:"climate_readings"`
}

// Export writes snap to a fresh SQLite database at path, replacing any
// existing file. All rows are inserted in one transaction.
func Export(ctx context.Context, path string, snap Snapshot) (Counts, error) {
	var counts Counts

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return counts, fmt.Errorf("creating export directory: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return counts, fmt.Errorf("removing previous export: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return counts, fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return counts, fmt.Errorf("applying schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	if counts.Locations, err = insertLocations(ctx, tx, snap.Locations); err != nil {
		return Counts{}, err
	}
	if counts.Usage, err = insertUsage(ctx, tx, snap.Usage); err != nil {
		return Counts{}, err
	}
	if counts.Heat, err = insertHeat(ctx, tx, snap.Heat); err != nil {
		return Counts{}, err
	}
	if counts.Climate, err = insertClimate(ctx, tx, snap.Climate, snap.Thresholds); err != nil {
		return Counts{}, err
	}

	exportedAt := snap.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now()
	}
	exportID, err := newID()
	if err != nil {
		return Counts{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO exports (export_id, exported_at) VALUES (?, ?)",
		exportID, exportedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return Counts{}, fmt.Errorf("recording export: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Counts{}, fmt.Errorf("committing export transaction: %w", err)
	}
	return counts, nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating row UUID: %w", err)
	}
	return id.String(), nil
}

func insertLocations(ctx context.Context, tx *sql.Tx, locs []types.Location) (int, error) {
	for _, l := range locs {
		id, err := newID()
		if err != nil {
			return 0, err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO locations (location_id, name, kind, risk_level, historical_quakes, last_magnitude, fault_distance_km)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, l.Name, string(l.Kind), string(l.Risk), l.HistoricalQuakes, l.LastMagnitude, l.FaultDistanceKm,
		)
		if err != nil {
			return 0, fmt.Errorf("exporting location %s: %w", l.Name, err)
		}
	}
	return len(locs), nil
}

func insertUsage(ctx context.Context, tx *sql.Tx, usage []types.WaterUsage) (int, error) {
	for i, u := range usage {
		id, err := newID()
		if err != nil {
			return 0, err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO water_usage (usage_id, line, date, shower, laundry, dishwashing, toilet, irrigation, total)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i+1, u.Date,
			u.Liters[types.Shower], u.Liters[types.Laundry], u.Liters[types.Dishwashing],
			u.Liters[types.Toilet], u.Liters[types.Irrigation], u.Total(),
		)
		if err != nil {
			return 0, fmt.Errorf("exporting usage for %s: %w", u.Date, err)
		}
	}
	return len(usage), nil
}

func insertHeat(ctx context.Context, tx *sql.Tx, readings []types.HeatReading) (int, error) {
	for i, r := range readings {
		id, err := newID()
		if err != nil {
			return 0, err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO heat_readings (reading_id, position, temperature_c, humidity_pct, heat_index_c) VALUES (?, ?, ?, ?, ?)",
			id, i, r.Temperature, r.Humidity, r.HeatIndex,
		)
		if err != nil {
			return 0, fmt.Errorf("exporting heat reading %d: %w", i, err)
		}
	}
	return len(readings), nil
}

func insertClimate(ctx context.Context, tx *sql.Tx, readings []types.ClimateReading, th types.ClimateThresholds) (int, error) {
	for i, r := range readings {
		id, err := newID()
		if err != nil {
			return 0, err
		}
		alerts := make([]string, 0, 3)
		for _, a := range r.Alerts(th) {
			alerts = append(alerts, string(a))
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO climate_readings (reading_id, position, recorded_at, temperature_c, rainfall_mm, humidity_pct, alerts)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, r.RecordedAt.UTC().Format(time.RFC3339), r.Temperature, r.Rainfall, r.Humidity,
			strings.Join(alerts, "; "),
		)
		if err != nil {
			return 0, fmt.Errorf("exporting climate reading %d: %w", i, err)
		}
	}
	return len(readings), nil
}
