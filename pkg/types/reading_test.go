package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeatIndex(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		humidity    float64
		want        float64
	}{
		{
			name:        "mild day uses simple formula",
			temperature: 20,
			humidity:    50,
			want:        19.36,
		},
		{
			name:        "hot humid day uses regression",
			temperature: 30,
			humidity:    70,
			want:        35.04,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewHeatReading(tt.temperature, tt.humidity)
			assert.InDelta(t, tt.want, r.HeatIndex, 0.05)
			assert.Equal(t, Round2(r.HeatIndex), r.HeatIndex, "heat index is stored with two decimals")
		})
	}
}

func TestHeatReadingLogLine(t *testing.T) {
	r := HeatReading{Temperature: 31, Humidity: 65.5, HeatIndex: 37.456}
	assert.Equal(t, "Temperature: 31.00°C, Humidity: 65.50%, Heat Index: 37.46°C", r.LogLine())
}

func TestClimateReadingAlerts(t *testing.T) {
	th := DefaultClimateThresholds()

	tests := []struct {
		name    string
		reading ClimateReading
		want    []Alert
	}{
		{
			name:    "stable weather",
			reading: ClimateReading{Temperature: 30, Rainfall: 10, Humidity: 60},
		},
		{
			name:    "thresholds are exclusive",
			reading: ClimateReading{Temperature: 38, Rainfall: 100, Humidity: 30},
		},
		{
			name:    "heatwave only",
			reading: ClimateReading{Temperature: 39, Rainfall: 0, Humidity: 50},
			want:    []Alert{AlertHeatwave},
		},
		{
			name:    "all alerts at once",
			reading: ClimateReading{Temperature: 41, Rainfall: 150, Humidity: 20},
			want:    []Alert{AlertHeatwave, AlertFloodRisk, AlertDrySpell},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reading.Alerts(th))
		})
	}
}

func TestClimateReadingLogBlock(t *testing.T) {
	r := ClimateReading{
		Temperature: 36.5,
		Rainfall:    12,
		Humidity:    80,
		RecordedAt:  time.Date(2025, 3, 14, 9, 5, 7, 0, time.UTC),
	}
	assert.Equal(t, []string{
		"=== 2025-03-14 09:05:07 ===",
		"Temperature: 36.50 °C",
		"Rainfall   : 12.00 mm",
		"Humidity   : 80.00 %",
		"------------------------",
	}, r.LogBlock())
}

func TestWaterUsageTotal(t *testing.T) {
	u := WaterUsage{Date: "2025-01-01", Liters: [NumUsageCategories]float64{80, 120, 30.5, 45, 0}}
	assert.InDelta(t, 275.5, u.Total(), 1e-9)
	assert.Equal(t, "Dishwashing", Dishwashing.String())
	assert.Equal(t, "Unknown", UsageCategory(9).String())
}

func TestLocationTips(t *testing.T) {
	high := Location{Name: "Manila", Risk: RiskHigh}
	moderate := Location{Name: "Cebu City", Risk: RiskModerate}
	low := Location{Name: "Roxas City", Risk: RiskLow}

	assert.Equal(t, high.Tips(), moderate.Tips())
	assert.Len(t, high.Tips(), 3)
	assert.Equal(t, []string{"Stay alert and aware of PHIVOLCS updates."}, low.Tips())
}

func TestLocationDetails(t *testing.T) {
	l := Location{
		Name: "Albay", Kind: KindProvince, Risk: RiskHigh,
		HistoricalQuakes: 42, LastMagnitude: 6.9, FaultDistanceKm: 12.5,
	}
	assert.Equal(t,
		"Location: Albay (Province)\nRisk Level: High\nHistorical Earthquakes: 42\nLast Major Magnitude: 6.9\nDistance to Fault Line: 12.5 km",
		l.Details())
}

func TestValidationErrorMessages(t *testing.T) {
	enumErr := &ValidationError{Field: "risk level", Value: "severe", Allowed: RiskLevels, Err: ErrInvalidEnumValue}
	assert.Equal(t, `invalid risk level "severe". Allowed: Low, Moderate, High only.`, enumErr.Error())
	assert.True(t, errors.Is(enumErr, ErrInvalidEnumValue))

	keyErr := &ValidationError{Field: "name", Err: ErrEmptyKey}
	assert.Equal(t, "name cannot be empty", keyErr.Error())

	numErr := &ValidationError{Field: "magnitude", Value: "abc", Err: ErrInvalidNumber}
	assert.ErrorIs(t, numErr, ErrInvalidNumber)
	assert.Contains(t, numErr.Error(), "magnitude")
}
