package tempterra

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/quwatro/internal/console"
	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// RunMenu drives the TempTerra menu until the user goes back.
func RunMenu(p *console.Prompter, h *Hub) error {
	return p.Run(console.Menu{
		Masthead: p.Styles().Masthead("TempTerra", "Learn, log, lead a greener future"),
		Options: []console.Option{
			{Label: "Calculate Heat Index", Run: func() error { return calculate(p, h) }},
			{Label: "View Saved Logs", Run: func() error { return showLogs(p, h) }},
			{Label: "Delete Entry", Run: func() error { return deleteEntry(p, h) }},
			{Label: "Climate Facts", Run: func() error { showFacts(p); return nil }},
		},
		Exit:     "Back to Modules",
		Farewell: "Returning to Main Menu...",
	})
}

func parseFloat(name string) func(string) (float64, error) {
	return func(raw string) (float64, error) { return field.Float(name, raw) }
}

func parseNonNegative(name string) func(string) (float64, error) {
	return func(raw string) (float64, error) { return field.NonNegativeFloat(name, raw) }
}

func calculate(p *console.Prompter, h *Hub) error {
	temp, err := console.Parse(p, "Enter temperature (°C): ", parseFloat("temperature"))
	if err != nil {
		return err
	}
	hum, err := console.Parse(p, "Enter humidity (%): ", parseNonNegative("humidity"))
	if err != nil {
		return err
	}

	r, err := h.Calculate(temp, hum)
	full := errors.Is(err, types.ErrCapacityExceeded)
	if err != nil && !full {
		return err
	}
	p.Printf("Calculated Heat Index: %.2f°C\n", r.HeatIndex)
	p.Println("Data logged successfully.")
	if full {
		p.Println("Storage full. Cannot insert more data.")
	} else {
		p.Printf("Inserted Heat Index: %.2f°C\n", r.HeatIndex)
	}

	showEntries(p, h)
	h.Sort()
	p.Println("Heat Index array sorted.")
	showEntries(p, h)

	v, err := console.Parse(p, "\nSearch for Heat Index value (°C): ", parseFloat("heat index"))
	if err != nil {
		return err
	}
	found := h.Search(v)
	if len(found) == 0 {
		p.Printf("Heat Index %.2f°C not found.\n", v)
		return nil
	}
	entries := h.Entries()
	for _, i := range found {
		p.Printf("Found at index %d: %.2f°C\n", i, entries[i].HeatIndex)
	}
	return nil
}

func showEntries(p *console.Prompter, h *Hub) {
	entries := h.Entries()
	if len(entries) == 0 {
		p.Println("No entries to display.")
		return
	}
	p.Println("\nStored Heat Indexes:")
	for i, r := range entries {
		p.Printf("%d. %.2f°C\n", i, r.HeatIndex)
	}
}

func showLogs(p *console.Prompter, h *Hub) error {
	lines, err := h.Logs()
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

func deleteEntry(p *console.Prompter, h *Hub) error {
	if h.Len() == 0 {
		p.Println("No entries to delete.")
		return nil
	}
	showEntries(p, h)

	prompt := fmt.Sprintf("\nDelete Heat Index at index (0 to %d): ", h.Len()-1)
	i, err := console.Parse(p, prompt, func(raw string) (int, error) { return field.Int("index", raw) })
	if err != nil {
		return err
	}
	if _, err := h.Delete(i); err != nil {
		if errors.Is(err, types.ErrIndexOutOfRange) {
			p.Println("Invalid index.")
			showEntries(p, h)
			return nil
		}
		return err
	}
	p.Printf("Deleted index %d from array.\n", i)
	showEntries(p, h)
	return nil
}

func showFacts(p *console.Prompter) {
	p.Heading("========= Climate Awareness =========")
	for i, fact := range Facts() {
		p.Printf("%d. %s\n\n", i+1, fact)
	}
}
