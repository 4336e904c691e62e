package cli

import (
	"github.com/mesh-intelligence/quwatro/internal/console"
	"github.com/mesh-intelligence/quwatro/internal/ecopulse"
	"github.com/mesh-intelligence/quwatro/internal/quakeguard"
	"github.com/mesh-intelligence/quwatro/internal/tempterra"
	"github.com/mesh-intelligence/quwatro/internal/waver"
)

// Suite text.
const (
	suiteTitle   = "QuWaTrO"
	suiteTagline = "Stay safe, stay bright, and do what's right!"
	developedBy  = "Developed by: GEME"
	goodbye      = "Thank you for using QuWaTrO. Stay safe!"
)

var authors = []string{
	"DALISAY, Gelliel Ashley M.",
	"DIAZ, Elyzah Kim C.",
	"LABITAN, Mikko Ronce N.",
	"UNTIVEROS, Edz Margaret",
}

var helpText = []string{
	"This is a unified suite offering earthquake insights, water usage tracking,",
	"environmental temperature monitoring, and climate alerts:",
	"",
	"1. QuakeGuard - Earthquake Risk Info",
	"   - Looks up locations by name and filters them by risk level.",
	"   - Offers safety tips based on risk level.",
	"   - Helps users understand local quake hazards.",
	"",
	"2. WaVer - Water Usage Tracking",
	"   - Logs daily household water use by activity.",
	"   - Identifies high-usage days and suggests conservation tips.",
	"",
	"3. TempTerra - Temperature & Environment Hub",
	"   - Calculates the heat index from temperature and humidity.",
	"   - Keeps a sortable, searchable list of past results.",
	"   - Shares climate facts about extreme heat.",
	"",
	"4. EcoPulse - Climate Monitoring",
	"   - Records temperature, rainfall and humidity.",
	"   - Raises heatwave, flood risk and dry spell alerts.",
	"   - Saves every reading to a timestamped log.",
}

var aboutText = []string{
	"This suite combines multiple environmental and disaster management tools:",
	"",
	"QuakeGuard organizes earthquake risk data for locations across the Philippines.",
	"Users search, filter and maintain records by risk level, historical seismic",
	"activity and distance to fault lines, with preparedness tips for each level.",
	"",
	"WaVer tracks household water consumption per activity, flags days above the",
	"high-usage threshold and suggests ways to reduce waste.",
	"",
	"TempTerra calculates the heat index from temperature and humidity, keeps a",
	"bounded history that can be sorted and searched, and logs every calculation.",
	"",
	"EcoPulse records climate observations, raises threshold alerts and saves",
	"each reading to a timestamped log for later review.",
}

// runSuite drives the start menu, which leads to the main menu and from
// there to the module menus.
func runSuite(p *console.Prompter, s *session) error {
	return p.Run(console.Menu{
		Masthead: p.Styles().Masthead(suiteTitle, suiteTagline) + "\n" + developedBy,
		Options: []console.Option{
			{Label: "Start", Run: func() error { return runMain(p, s) }},
			{Label: "Help", Run: func() error { showText(p, "HELP", helpText); return nil }},
		},
		Exit:     "Exit",
		Farewell: goodbye,
	})
}

func runMain(p *console.Prompter, s *session) error {
	return p.Run(console.Menu{
		Title: "===== QuWaTrO Management Suite =====",
		Options: []console.Option{
			{Label: "Modules", Run: func() error { return runModules(p, s) }},
			{Label: "Authors", Run: func() error { showAuthors(p); return nil }},
			{Label: "About the Project", Run: func() error { showText(p, "About the Project", aboutText); return nil }},
		},
		Exit:     "Exit to Main Menu",
		Farewell: "Returning to Start Menu...",
	})
}

func runModules(p *console.Prompter, s *session) error {
	return p.Run(console.Menu{
		Title: "--- Modules ---",
		Options: []console.Option{
			{Label: "QuakeGuard (Earthquake Risk System)", Run: func() error { return openQuakeGuard(p, s) }},
			{Label: "WaVer (Water Usage Tracker)", Run: func() error { return openWaVer(p, s) }},
			{Label: "TempTerra Knowledge Hub", Run: func() error { return openTempTerra(p, s) }},
			{Label: "EcoPulse Climate Monitor", Run: func() error { return openEcoPulse(p, s) }},
		},
		Exit:     "Back to Main Menu",
		Farewell: "Returning to Main Menu...",
		Prompt:   "Select a module: ",
	})
}

func openQuakeGuard(p *console.Prompter, s *session) error {
	r, err := s.quakeGuard()
	if err != nil {
		return err
	}
	return quakeguard.RunMenu(p, r)
}

func openWaVer(p *console.Prompter, s *session) error {
	return waver.RunMenu(p, s.waVer(), s.clock)
}

func openTempTerra(p *console.Prompter, s *session) error {
	return tempterra.RunMenu(p, s.tempTerra())
}

func openEcoPulse(p *console.Prompter, s *session) error {
	return ecopulse.RunMenu(p, s.ecoPulse())
}

func showAuthors(p *console.Prompter) {
	p.Heading("--- Authors ---")
	for i, a := range authors {
		p.Printf("%d. %s\n", i+1, a)
	}
}

func showText(p *console.Prompter, heading string, lines []string) {
	p.Heading("==== " + heading + " ====")
	p.Lines(lines)
}
