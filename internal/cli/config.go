package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/quwatro/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "QUWATRO"

	cfgKeyDataDir            = "data_dir"
	cfgKeyLogLevel           = "log_level"
	cfgKeyWaterThreshold     = "water_threshold_liters"
	cfgKeyHeatCapacity       = "heat_capacity"
	cfgKeyClimateCapacity    = "climate_capacity"
	cfgKeyHeatwaveCelsius    = "heatwave_celsius"
	cfgKeyFloodRainfallMM    = "flood_rainfall_mm"
	cfgKeyDryHumidityPercent = "dry_humidity_percent"
	cfgKeyMetricsTextfile    = "metrics_textfile"
)

// envKeys are the settings that QUWATRO_<KEY> may override. data_dir is
// absent because QUWATRO_DATA_DIR ranks below the config file value and is
// handled by paths.ResolveDataDir.
var envKeys = []string{
	cfgKeyLogLevel,
	cfgKeyWaterThreshold,
	cfgKeyHeatCapacity,
	cfgKeyClimateCapacity,
	cfgKeyHeatwaveCelsius,
	cfgKeyFloodRainfallMM,
	cfgKeyDryHumidityPercent,
	cfgKeyMetricsTextfile,
}

// loadConfig reads config.yaml from configDir using Viper, layers the
// QUWATRO_ environment overrides on top of the defaults and validates the
// result. A missing config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyDataDir, "")
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyWaterThreshold, def.WaterThresholdLiters)
	v.SetDefault(cfgKeyHeatCapacity, def.HeatCapacity)
	v.SetDefault(cfgKeyClimateCapacity, def.ClimateCapacity)
	v.SetDefault(cfgKeyHeatwaveCelsius, def.HeatwaveCelsius)
	v.SetDefault(cfgKeyFloodRainfallMM, def.FloodRainfallMM)
	v.SetDefault(cfgKeyDryHumidityPercent, def.DryHumidityPercent)
	v.SetDefault(cfgKeyMetricsTextfile, "")

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
