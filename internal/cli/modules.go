package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quwatro/internal/console"
)

// newModuleCmds returns one command per module that opens its menu
// directly, skipping the suite navigation.
func newModuleCmds(s *session) []*cobra.Command {
	modules := []struct {
		use   string
		short string
		open  func(*console.Prompter, *session) error
	}{
		{"quakeguard", "Open the QuakeGuard earthquake risk registry", openQuakeGuard},
		{"waver", "Open the WaVer water usage tracker", openWaVer},
		{"tempterra", "Open the TempTerra heat index hub", openTempTerra},
		{"ecopulse", "Open the EcoPulse climate monitor", openEcoPulse},
	}

	cmds := make([]*cobra.Command, 0, len(modules))
	for _, m := range modules {
		m := m
		cmds = append(cmds, &cobra.Command{
			Use:   m.use,
			Short: m.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return m.open(s.prompter(cmd), s)
			},
		})
	}
	return cmds
}
