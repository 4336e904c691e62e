package quakeguard

import "github.com/mesh-intelligence/quwatro/pkg/types"

func province(name string, risk types.RiskLevel, quakes int, mag, dist float64) types.Location {
	return types.Location{Name: name, Kind: types.KindProvince, Risk: risk, HistoricalQuakes: quakes, LastMagnitude: mag, FaultDistanceKm: dist}
}

func city(name string, risk types.RiskLevel, quakes int, mag, dist float64) types.Location {
	return types.Location{Name: name, Kind: types.KindCity, Risk: risk, HistoricalQuakes: quakes, LastMagnitude: mag, FaultDistanceKm: dist}
}

// SeedLocations returns the built-in registry of Philippine locations.
func SeedLocations() []types.Location {
	const (
		low  = types.RiskLow
		mod  = types.RiskModerate
		high = types.RiskHigh
	)
	return []types.Location{
		province("Abra", mod, 25, 6.3, 22.0),
		province("Albay", high, 42, 6.9, 12.5),
		city("Angeles City", mod, 19, 6.0, 28.0),
		city("Antipolo City", high, 31, 6.7, 10.0),
		province("Antique", mod, 22, 6.1, 35.0),
		city("Bacolod City", mod, 18, 5.8, 40.0),
		city("Batangas City", high, 38, 6.5, 14.0),
		city("Cagayan de Oro City", low, 6, 4.9, 80.0),
		city("Caloocan City", high, 30, 6.6, 11.5),
		city("Cebu City", mod, 20, 6.0, 34.0),
		city("Davao City", mod, 18, 6.2, 30.0),
		city("Dagupan City", mod, 27, 6.4, 26.0),
		city("Dasmariñas City", mod, 21, 6.2, 20.0),
		city("General Santos City", mod, 15, 5.9, 37.0),
		province("Ilocos Region", mod, 29, 6.3, 24.0),
		city("Ilagan City", mod, 17, 6.0, 32.0),
		city("Kalibo City", low, 5, 4.8, 90.0),
		city("Laoag City", low, 8, 5.0, 70.0),
		city("Las Piñas City", high, 33, 6.8, 13.5),
		city("Legazpi City", high, 45, 7.0, 10.0),
		city("Manila", high, 56, 7.1, 15.5),
		city("Makati City", high, 34, 6.6, 14.0),
		city("Marikina City", high, 36, 6.7, 9.0),
		city("Masbate City", high, 40, 6.8, 18.0),
		city("Muntinlupa City", high, 32, 6.5, 16.0),
		city("Naga City", mod, 23, 6.1, 25.0),
		city("Olongapo City", mod, 20, 6.2, 29.0),
		city("Pagadian City", mod, 16, 5.9, 38.0),
		city("Parañaque City", high, 31, 6.4, 17.0),
		city("Pasig City", high, 30, 6.5, 12.0),
		city("Puerto Princesa City", low, 3, 4.6, 150.0),
		city("Quezon City", high, 35, 6.9, 11.0),
		city("Roxas City", low, 4, 4.7, 110.0),
		city("San Jose del Monte City", mod, 22, 6.0, 27.0),
		city("San Pablo City", mod, 18, 6.1, 30.0),
		city("Tacloban City", mod, 20, 6.3, 28.0),
		city("Tagbilaran City", mod, 17, 6.0, 33.0),
		city("Taguig City", high, 28, 6.5, 14.0),
		city("Tagum City", mod, 15, 5.8, 36.0),
		city("Tarlac City", mod, 19, 6.1, 25.0),
		city("Tuguegarao City", low, 10, 5.4, 65.0),
		city("Valenzuela City", high, 30, 6.4, 15.0),
		city("Vigan City", mod, 24, 6.2, 22.5),
	}
}
