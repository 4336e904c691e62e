package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/quwatro/internal/paths"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

func newInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize quwatro configuration and data directories",
		Long:  "Create the configuration directory with a default config.yaml, then create the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, s)
		},
	}
}

func runInit(cmd *cobra.Command, s *session) error {
	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(s.configDir, paths.ConfigFileName)
	if err := writeConfigIfMissing(configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if err := os.MkdirAll(s.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config: %s\n", configPath)
	fmt.Fprintf(out, "Data:   %s\n", s.cfg.DataDir)
	fmt.Fprintln(out, "QuWaTrO initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
