// Package sqlite exports a QuWaTrO session to a SQLite database for
// offline analysis.
package sqlite

// Schema DDL for the export tables.
const (
	createLocations = `CREATE TABLE locations (
    location_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE COLLATE NOCASE,
    kind TEXT NOT NULL,
    risk_level TEXT NOT NULL,
    historical_quakes INTEGER NOT NULL,
    last_magnitude REAL NOT NULL,
    fault_distance_km REAL NOT NULL
);`

	createWaterUsage = `CREATE TABLE water_usage (
    usage_id TEXT PRIMARY KEY,
    line INTEGER NOT NULL,
    date TEXT NOT NULL,
    shower REAL NOT NULL,
    laundry REAL NOT NULL,
    dishwashing REAL NOT NULL,
    toilet REAL NOT NULL,
    irrigation REAL NOT NULL,
    total REAL NOT NULL
);`

	createHeatReadings = `CREATE TABLE heat_readings (
    reading_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    temperature_c REAL NOT NULL,
    humidity_pct REAL NOT NULL,
    heat_index_c REAL NOT NULL
);`

	createClimateReadings = `CREATE TABLE climate_readings (
    reading_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    recorded_at TEXT NOT NULL,
    temperature_c REAL NOT NULL,
    rainfall_mm REAL NOT NULL,
    humidity_pct REAL NOT NULL,
    alerts TEXT NOT NULL
);`

	createExports = `CREATE TABLE exports (
    export_id TEXT PRIMARY KEY,
    exported_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxLocationsRisk   = `CREATE INDEX idx_locations_risk ON locations(risk_level);`
	idxWaterUsageDate  = `CREATE INDEX idx_water_usage_date ON water_usage(date);`
	idxHeatReadingsHI  = `CREATE INDEX idx_heat_readings_heat_index ON heat_readings(heat_index_c);`
	idxClimateRecorded = `CREATE INDEX idx_climate_readings_recorded ON climate_readings(recorded_at);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createLocations,
	createWaterUsage,
	createHeatReadings,
	createClimateReadings,
	createExports,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxLocationsRisk,
	idxWaterUsageDate,
	idxHeatReadingsHI,
	idxClimateRecorded,
}
