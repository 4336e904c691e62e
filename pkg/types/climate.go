package types

import (
	"fmt"
	"time"
)

// ClimateReading is one EcoPulse observation.
type ClimateReading struct {
	Temperature float64   `json:"temperature_c"`
	Rainfall    float64   `json:"rainfall_mm"`
	Humidity    float64   `json:"humidity_pct"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// ClimateThresholds configures when a reading raises an alert.
type ClimateThresholds struct {
	HeatwaveCelsius    float64 // Alert when temperature is above this.
	FloodRainfallMM    float64 // Alert when rainfall is above this.
	DryHumidityPercent float64 // Alert when humidity is below this.
}

// DefaultClimateThresholds returns the stock alert thresholds.
func DefaultClimateThresholds() ClimateThresholds {
	return ClimateThresholds{
		HeatwaveCelsius:    38,
		FloodRainfallMM:    100,
		DryHumidityPercent: 30,
	}
}

// Alert is a named climate warning.
type Alert string

// Climate alerts.
const (
	AlertHeatwave  Alert = "Heatwave Alert!"
	AlertFloodRisk Alert = "Flood Risk Alert!"
	AlertDrySpell  Alert = "Dry Spell Warning!"
)

// Alerts evaluates each threshold independently and returns every alert
// the reading raises, in heatwave, flood, dry-spell order. An empty result
// means the weather is stable.
func (r ClimateReading) Alerts(th ClimateThresholds) []Alert {
	var alerts []Alert
	if r.Temperature > th.HeatwaveCelsius {
		alerts = append(alerts, AlertHeatwave)
	}
	if r.Rainfall > th.FloodRainfallMM {
		alerts = append(alerts, AlertFloodRisk)
	}
	if r.Humidity < th.DryHumidityPercent {
		alerts = append(alerts, AlertDrySpell)
	}
	return alerts
}

// LogBlock renders the reading as a timestamped journal block.
func (r ClimateReading) LogBlock() []string {
	return []string{
		"=== " + r.RecordedAt.Format(time.DateTime) + " ===",
		fmt.Sprintf("Temperature: %.2f °C", r.Temperature),
		fmt.Sprintf("Rainfall   : %.2f mm", r.Rainfall),
		fmt.Sprintf("Humidity   : %.2f %%", r.Humidity),
		"------------------------",
	}
}
