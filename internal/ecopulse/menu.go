package ecopulse

import (
	"errors"
	"path/filepath"

	"github.com/mesh-intelligence/quwatro/internal/console"
	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// RunMenu drives the EcoPulse menu until the user goes back.
func RunMenu(p *console.Prompter, m *Monitor) error {
	return p.Run(console.Menu{
		Masthead: p.Styles().Masthead("EcoPulse", "Measure. Monitor. Manage."),
		Options: []console.Option{
			{Label: "Input New Climate Data", Run: func() error { return input(p, m) }},
			{Label: "Analyze All Data", Run: func() error { analyze(p, m); return nil }},
			{Label: "Save All Entries to Log File", Run: func() error { return save(p, m) }},
			{Label: "View Climate Entries", Run: func() error { showEntries(p, m); return nil }},
			{Label: "View Saved Logs", Run: func() error { return showLogs(p, m) }},
		},
		Exit:     "Back to Modules",
		Farewell: "Returning to Main Menu...",
	})
}

func input(p *console.Prompter, m *Monitor) error {
	temp, err := console.Parse(p, "\nEnter Temperature (°C): ", func(raw string) (float64, error) {
		return field.Float("temperature", raw)
	})
	if err != nil {
		return err
	}
	rain, err := console.Parse(p, "Enter Rainfall (mm): ", func(raw string) (float64, error) {
		return field.NonNegativeFloat("rainfall", raw)
	})
	if err != nil {
		return err
	}
	hum, err := console.Parse(p, "Enter Humidity (%): ", func(raw string) (float64, error) {
		return field.NonNegativeFloat("humidity", raw)
	})
	if err != nil {
		return err
	}

	_, err = m.Record(types.ClimateReading{Temperature: temp, Rainfall: rain, Humidity: hum})
	if errors.Is(err, types.ErrCapacityExceeded) {
		p.Println("Cannot add more entries, storage full.")
		return nil
	}
	if err != nil {
		return err
	}
	p.Println("Entry added!")
	return nil
}

func analyze(p *console.Prompter, m *Monitor) {
	results := m.Analyze()
	if len(results) == 0 {
		p.Println("No data to analyze.")
		return
	}
	p.Println("\nAnalyzing all entries...")
	for i, a := range results {
		p.Printf("\n>> Entry #%d\n", i+1)
		p.Println("--- Alerts ---")
		if a.Stable() {
			p.Println("No critical alerts. Weather is stable.")
			continue
		}
		for _, alert := range a.Alerts {
			p.Warn(string(alert))
		}
	}
}

func save(p *console.Prompter, m *Monitor) error {
	n, err := m.SaveAll()
	if err != nil {
		return err
	}
	if n == 0 {
		p.Println("No entries to save.")
		return nil
	}
	p.Printf("All entries saved to %s\n", filepath.Base(m.Path()))
	return nil
}

func showEntries(p *console.Prompter, m *Monitor) {
	entries := m.Entries()
	if len(entries) == 0 {
		p.Println("\nNo climate records yet.")
		return
	}
	for i, r := range entries {
		p.Printf("\n== Entry #%d ==\n", i+1)
		p.Println("--- Climate Data ---")
		// The block's first and last lines are the timestamp and rule.
		block := r.LogBlock()
		p.Lines(block[1 : len(block)-1])
	}
}

func showLogs(p *console.Prompter, m *Monitor) error {
	lines, err := m.Logs()
	if errors.Is(err, types.ErrNotFound) {
		p.Println("No logs found.")
		return nil
	}
	if err != nil {
		return err
	}
	p.Heading("--- Saved Logs ---")
	p.Lines(lines)
	return nil
}
