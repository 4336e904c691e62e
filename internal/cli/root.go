// Package cli implements the quwatro command-line interface: the
// interactive suite, direct module commands and the non-interactive
// summary and export commands.
package cli

import (
	"errors"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

// NewRootCmd creates the top-level "quwatro" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(clockwork.NewRealClock())
}

func newRootCmd(clock clockwork.Clock) *cobra.Command {
	s := &session{clock: clock}

	root := &cobra.Command{
		Use:     "quwatro",
		Short:   "Earthquake, water, heat and climate awareness suite",
		Long:    "QuWaTrO bundles QuakeGuard, WaVer, TempTerra and EcoPulse behind one\ninteractive console menu.",
		Version: Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return s.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(s.prompter(cmd), s)
		},
	}

	root.PersistentFlags().StringVar(&s.flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.quwatro or the user config dir)")
	root.PersistentFlags().StringVar(&s.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.quwatro-db)")
	root.PersistentFlags().BoolVar(&s.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&s.flags.verbose, "verbose", false, "log at debug level")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(s))
	root.AddCommand(newModuleCmds(s)...)
	root.AddCommand(newSummaryCmd(s))
	root.AddCommand(newExportCmd(s))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(exitCode(NewRootCmd().Execute()))
}

// exitCode maps a command error to a process exit code. Storage failures
// are system errors; everything else is a usage error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrWrite), errors.Is(err, types.ErrRead):
		return exitSysError
	default:
		return exitUserError
	}
}
