package quakeguard

import (
	"errors"

	"github.com/mesh-intelligence/quwatro/internal/console"
	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// RunMenu drives the QuakeGuard menu until the user goes back.
func RunMenu(p *console.Prompter, r *Registry) error {
	return p.Run(console.Menu{
		Masthead: p.Styles().Masthead("QuakeGuard", "Stay strong, stay steady, trust QuakeGuard!"),
		Options: []console.Option{
			{Label: "Search Location Info", Run: func() error { return search(p, r) }},
			{Label: "Add New Location", Run: func() error { return add(p, r) }},
			{Label: "View All Locations", Run: func() error { listAll(p, r); return nil }},
			{Label: "Filter by Risk Level", Run: func() error { return filterByRisk(p, r) }},
			{Label: "Delete Location", Run: func() error { return remove(p, r) }},
		},
		Exit:     "Back to Modules",
		Farewell: "Returning to Main Menu...",
	})
}

func search(p *console.Prompter, r *Registry) error {
	raw, err := p.Ask("\nEnter location to search: ")
	if err != nil {
		return err
	}
	name, err := field.Key("location name", raw)
	if err != nil {
		return err
	}

	loc, ok := r.Search(name)
	if !ok {
		p.Println("Location not found.")
		return nil
	}
	p.Println()
	p.Println(loc.Details())
	p.Println("\nPreparedness Tips:")
	for _, tip := range loc.Tips() {
		p.Println("- " + tip)
	}
	return nil
}

func add(p *console.Prompter, r *Registry) error {
	raw, err := p.Ask("\nEnter Location Name: ")
	if err != nil {
		return err
	}
	name, err := field.Key("location name", raw)
	if err != nil {
		return err
	}
	if _, ok := r.Search(name); ok {
		p.Println("Location already exists.")
		return nil
	}

	if raw, err = p.Ask("Location Type (City/Province) [City]: "); err != nil {
		return err
	}
	kind, err := field.LocationKind(raw)
	if err != nil {
		return err
	}

	if raw, err = p.Ask("Enter Risk Level (Low/Moderate/High): "); err != nil {
		return err
	}
	risk, err := field.RiskLevel(raw)
	if err != nil {
		return err
	}

	if raw, err = p.Ask("Historical Earthquakes: "); err != nil {
		return err
	}
	quakes, err := field.NonNegativeInt("historical earthquakes", raw)
	if err != nil {
		return err
	}

	if raw, err = p.Ask("Last Major Magnitude: "); err != nil {
		return err
	}
	mag, err := field.Float("magnitude", raw)
	if err != nil {
		return err
	}

	if raw, err = p.Ask("Distance to Fault Line (km): "); err != nil {
		return err
	}
	dist, err := field.NonNegativeFloat("distance to fault line", raw)
	if err != nil {
		return err
	}

	err = r.Add(types.Location{
		Name:             name,
		Kind:             kind,
		Risk:             risk,
		HistoricalQuakes: quakes,
		LastMagnitude:    mag,
		FaultDistanceKm:  dist,
	})
	if err != nil {
		return err
	}
	p.Println("Location added successfully!")
	return nil
}

func listAll(p *console.Prompter, r *Registry) {
	p.Println("\nAll Locations (Alphabetical):")
	for _, loc := range r.All() {
		p.Printf("- %s (%s)\n", loc.Name, loc.Risk)
	}
}

func filterByRisk(p *console.Prompter, r *Registry) error {
	raw, err := p.Ask("\nEnter risk level to filter (Low/Moderate/High): ")
	if err != nil {
		return err
	}
	risk, err := field.RiskLevel(raw)
	if err != nil {
		return err
	}

	p.Printf("\nLocations with Risk Level [%s]:\n", risk)
	matches := r.FilterByRisk(risk)
	if len(matches) == 0 {
		p.Println("No locations found with that risk level.")
		return nil
	}
	for _, loc := range matches {
		p.Println("- " + loc.Name)
	}
	return nil
}

func remove(p *console.Prompter, r *Registry) error {
	raw, err := p.Ask("\nEnter location to delete: ")
	if err != nil {
		return err
	}
	name, err := field.Key("location name", raw)
	if err != nil {
		return err
	}

	loc, err := r.Delete(name)
	if errors.Is(err, types.ErrNotFound) {
		p.Println("Location not found.")
		return nil
	}
	if err != nil {
		return err
	}
	p.Printf("Deleted %s.\n", loc.Name)
	return nil
}
