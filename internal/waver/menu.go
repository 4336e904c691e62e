package waver

import (
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mesh-intelligence/quwatro/internal/aggregate"
	"github.com/mesh-intelligence/quwatro/internal/console"
	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// NoDataMessage is shown when the usage log does not exist yet.
const NoDataMessage = "No usage data file found. Log some usage first."

var categoryPrompts = [types.NumUsageCategories]string{
	types.Shower:      "Enter shower water usage (liters): ",
	types.Laundry:     "Enter laundry water usage (liters): ",
	types.Dishwashing: "Enter dishwashing water usage (liters): ",
	types.Toilet:      "Enter toilet water usage (liters): ",
	types.Irrigation:  "Enter irrigation/gardening water usage (liters): ",
}

// RunMenu drives the WaVer menu until the user goes back. clock supplies
// the default date for a new entry.
func RunMenu(p *console.Prompter, t *Tracker, clock clockwork.Clock) error {
	return p.Run(console.Menu{
		Masthead: p.Styles().Masthead("WaVer", "Be wise, stop waste, work with WaVer!"),
		Options: []console.Option{
			{Label: "Log Daily Water Usage", Run: func() error { return logUsage(p, t, clock) }},
			{Label: "View Usage Summary", Run: func() error { return showSummary(p, t) }},
			{Label: "Check for High Usage Days", Run: func() error { return showHighUsage(p, t) }},
			{Label: "View Water-Saving Tips", Run: func() error { showTips(p); return nil }},
		},
		Exit:     "Back to Modules",
		Farewell: "Returning to Main Menu...",
	})
}

func logUsage(p *console.Prompter, t *Tracker, clock clockwork.Clock) error {
	today := clock.Now().Format(time.DateOnly)
	raw, err := p.Ask("\nEnter today's date (YYYY-MM-DD) [" + today + "]: ")
	if err != nil {
		return err
	}
	if raw == "" {
		raw = today
	}
	date, err := field.LogKey("date", raw)
	if err != nil {
		return err
	}

	u := types.WaterUsage{Date: date}
	for _, c := range types.UsageCategories {
		v, err := console.Parse(p, categoryPrompts[c], func(s string) (float64, error) {
			return field.NonNegativeFloat(c.String(), s)
		})
		if err != nil {
			return err
		}
		u.Liters[c] = v
	}

	showUsage(p, u)
	ok, err := p.Confirm("Is this information correct? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		p.Println("Data not saved. Please re-enter if needed.")
		return nil
	}

	high, err := t.Log(u)
	if err != nil {
		return err
	}
	p.Println("Data saved successfully!")
	p.Printf("Total usage today: %.2f liters\n", u.Total())
	if high {
		p.Warn("Warning: High water usage detected!")
		showTips(p)
	}
	return nil
}

func showUsage(p *console.Prompter, u types.WaterUsage) {
	p.Println("\nDate: " + u.Date)
	for _, c := range types.UsageCategories {
		p.Printf("%s: %.2f liters\n", c, u.Liters[c])
	}
	p.Printf("Total: %.2f liters\n", u.Total())
}

func showSummary(p *console.Prompter, t *Tracker) error {
	entries, err := t.Entries()
	if errors.Is(err, types.ErrNotFound) {
		p.Println(NoDataMessage)
		return nil
	}
	if err != nil {
		return err
	}

	p.Heading("=== Water Usage Summary ===")
	for _, u := range entries {
		showUsage(p, u)
	}

	s := aggregate.Summarize(entries, types.WaterUsage.Total, t.Threshold())
	avg, ok := s.Average()
	if !ok {
		p.Println("No usage data available.")
		return nil
	}
	p.Printf("\nTotal recorded days: %d\n", s.Count)
	p.Printf("Grand total usage: %.2f liters\n", s.Total)
	p.Printf("Average daily usage: %.2f liters\n", avg)
	return nil
}

func showHighUsage(p *console.Prompter, t *Tracker) error {
	days, err := t.HighUsageDays()
	if errors.Is(err, types.ErrNotFound) {
		p.Println(NoDataMessage)
		return nil
	}
	if err != nil {
		return err
	}

	p.Printf("\nDays with high water usage (>%g liters):\n", t.Threshold())
	if len(days) == 0 {
		p.Println("None")
		return nil
	}
	for _, u := range days {
		p.Printf("- %s: %.2f liters\n", u.Date, u.Total())
	}
	return nil
}

func showTips(p *console.Prompter) {
	p.Heading("=== Water-Saving Tips ===")
	for i, tip := range Tips() {
		p.Printf("%d. %s\n", i+1, tip)
	}
}
