package types

import "errors"

// Config holds the data location, logging and per-module thresholds for a
// QuWaTrO session.
type Config struct {
	DataDir  string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`

	// WaVer.
	WaterThresholdLiters float64 `json:"water_threshold_liters" yaml:"water_threshold_liters" mapstructure:"water_threshold_liters"`

	// TempTerra and EcoPulse store capacities.
	HeatCapacity    int `json:"heat_capacity" yaml:"heat_capacity" mapstructure:"heat_capacity"`
	ClimateCapacity int `json:"climate_capacity" yaml:"climate_capacity" mapstructure:"climate_capacity"`

	// EcoPulse alert thresholds.
	HeatwaveCelsius    float64 `json:"heatwave_celsius" yaml:"heatwave_celsius" mapstructure:"heatwave_celsius"`
	FloodRainfallMM    float64 `json:"flood_rainfall_mm" yaml:"flood_rainfall_mm" mapstructure:"flood_rainfall_mm"`
	DryHumidityPercent float64 `json:"dry_humidity_percent" yaml:"dry_humidity_percent" mapstructure:"dry_humidity_percent"`

	// MetricsTextfile, when set, receives the session counters in
	// Prometheus text format on exit.
	MetricsTextfile string `json:"metrics_textfile" yaml:"metrics_textfile" mapstructure:"metrics_textfile"`
}

// Defaults.
const (
	DefaultLogLevel             = "warn"
	DefaultWaterThresholdLiters = 500.0
	DefaultStoreCapacity        = 100
)

// Config validation errors.
var (
	ErrCapacityInvalid  = errors.New("store capacity must be positive")
	ErrThresholdInvalid = errors.New("threshold must not be negative")
	ErrLogLevelUnknown  = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config populated with the stock values. DataDir
// is left empty for the caller to resolve.
func DefaultConfig() Config {
	th := DefaultClimateThresholds()
	return Config{
		LogLevel:             DefaultLogLevel,
		WaterThresholdLiters: DefaultWaterThresholdLiters,
		HeatCapacity:         DefaultStoreCapacity,
		ClimateCapacity:      DefaultStoreCapacity,
		HeatwaveCelsius:      th.HeatwaveCelsius,
		FloodRainfallMM:      th.FloodRainfallMM,
		DryHumidityPercent:   th.DryHumidityPercent,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.HeatCapacity <= 0 || c.ClimateCapacity <= 0 {
		return ErrCapacityInvalid
	}
	if c.WaterThresholdLiters < 0 || c.FloodRainfallMM < 0 || c.DryHumidityPercent < 0 {
		return ErrThresholdInvalid
	}
	return nil
}

// ClimateThresholds returns the EcoPulse alert thresholds.
func (c Config) ClimateThresholds() ClimateThresholds {
	return ClimateThresholds{
		HeatwaveCelsius:    c.HeatwaveCelsius,
		FloodRainfallMM:    c.FloodRainfallMM,
		DryHumidityPercent: c.DryHumidityPercent,
	}
}
