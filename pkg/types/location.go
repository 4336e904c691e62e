package types

import "fmt"

// RiskLevel is the earthquake risk category of a location.
type RiskLevel string

// Risk levels, in their canonical spelling.
const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// RiskLevels lists the allowed risk levels in display order.
var RiskLevels = []string{string(RiskLow), string(RiskModerate), string(RiskHigh)}

// LocationKind tags a location as a city or a province.
type LocationKind string

// Location kinds.
const (
	KindCity     LocationKind = "City"
	KindProvince LocationKind = "Province"
)

// LocationKinds lists the allowed location kinds.
var LocationKinds = []string{string(KindCity), string(KindProvince)}

// Location is one entry of the earthquake risk registry. Name is the
// registry key and is matched case-insensitively.
type Location struct {
	Name             string       `json:"name"`
	Kind             LocationKind `json:"kind"`
	Risk             RiskLevel    `json:"risk_level"`
	HistoricalQuakes int          `json:"historical_quakes"`
	LastMagnitude    float64      `json:"last_magnitude"`
	FaultDistanceKm  float64      `json:"fault_distance_km"`
}

// Details renders the multi-line detail view shown after a search.
func (l Location) Details() string {
	return fmt.Sprintf(
		"Location: %s (%s)\nRisk Level: %s\nHistorical Earthquakes: %d\nLast Major Magnitude: %.1f\nDistance to Fault Line: %.1f km",
		l.Name, l.Kind, l.Risk, l.HistoricalQuakes, l.LastMagnitude, l.FaultDistanceKm,
	)
}

// Tips returns the preparedness tips for the location's risk level.
// High and Moderate share the same advice.
func (l Location) Tips() []string {
	switch l.Risk {
	case RiskHigh, RiskModerate:
		return []string{
			"Keep a Go-Bag ready (food, water, medicine).",
			"Know safe spots in your home.",
			"Secure heavy objects and join drills.",
		}
	default:
		return []string{"Stay alert and aware of PHIVOLCS updates."}
	}
}
