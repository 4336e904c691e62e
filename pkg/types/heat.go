package types

import (
	"fmt"
	"math"
)

// HeatReading is a temperature and humidity pair with its derived heat
// index. All temperatures are in degrees Celsius.
type HeatReading struct {
	Temperature float64 `json:"temperature_c"`
	Humidity    float64 `json:"humidity_pct"`
	HeatIndex   float64 `json:"heat_index_c"`
}

// NewHeatReading derives the heat index for the given temperature (°C) and
// relative humidity (%). The index is rounded to two decimals so that an
// exact-value search matches the value shown to the user.
func NewHeatReading(temperature, humidity float64) HeatReading {
	return HeatReading{
		Temperature: temperature,
		Humidity:    humidity,
		HeatIndex:   Round2(HeatIndex(temperature, humidity)),
	}
}

// HeatIndex computes the apparent temperature in °C using the NWS procedure:
// the Steadman approximation below 80 °F, the Rothfusz regression with its
// humidity adjustments above.
func HeatIndex(celsius, humidity float64) float64 {
	t := celsius*9/5 + 32
	rh := humidity

	hi := 0.5 * (t + 61.0 + (t-68.0)*1.2 + rh*0.094)
	if (hi+t)/2 >= 80 {
		hi = -42.379 + 2.04901523*t + 10.14333127*rh -
			0.22475541*t*rh - 0.00683783*t*t - 0.05481717*rh*rh +
			0.00122874*t*t*rh + 0.00085282*t*rh*rh - 0.00000199*t*t*rh*rh

		switch {
		case rh < 13 && t >= 80 && t <= 112:
			hi -= ((13 - rh) / 4) * math.Sqrt((17-math.Abs(t-95))/17)
		case rh > 85 && t >= 80 && t <= 87:
			hi += ((rh - 85) / 10) * ((87 - t) / 5)
		}
	}
	return (hi - 32) * 5 / 9
}

// LogLine renders the reading in the journal's labeled line format.
func (r HeatReading) LogLine() string {
	return fmt.Sprintf("Temperature: %.2f°C, Humidity: %.2f%%, Heat Index: %.2f°C",
		r.Temperature, r.Humidity, r.HeatIndex)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
