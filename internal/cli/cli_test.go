package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/quwatro/internal/ledger"
	"github.com/mesh-intelligence/quwatro/internal/paths"
	"github.com/mesh-intelligence/quwatro/internal/quakeguard"
	"github.com/mesh-intelligence/quwatro/internal/waver"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

type testEnv struct {
	configDir string
	dataDir   string
	clock     *clockwork.FakeClock
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	for _, key := range append([]string{"data_dir"}, envKeys...) {
		t.Setenv("QUWATRO_"+strings.ToUpper(key), "")
	}
	root := t.TempDir()
	return testEnv{
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
		clock:     clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)),
	}
}

// run executes quwatro with scripted input and returns everything written
// to stdout and stderr.
func (e testEnv) run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(e.clock)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, paths.ConfigFileName), []byte(content), 0o644))
}

func (e testEnv) writeUsage(t *testing.T, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(e.dataDir, 0o755))
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(e.dataDir, waver.LogFileName), []byte(content), 0o644))
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "quwatro v"+Version+"\nmodule: "+modulePath+"\n", out)

	_, statErr := os.Stat(env.dataDir)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "version must not create the data directory")
}

func TestInitWritesDefaultConfig(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "QuWaTrO initialized successfully")
	assert.DirExists(t, env.dataDir)

	data, err := os.ReadFile(filepath.Join(env.configDir, paths.ConfigFileName))
	require.NoError(t, err)
	var cfg types.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestInitKeepsExistingConfig(t *testing.T) {
	env := newTestEnv(t)
	custom := "log_level: debug\nwater_threshold_liters: 750\n"
	env.writeConfig(t, custom)

	_, err := env.run(t, "", "init")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.configDir, paths.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when no file", func(t *testing.T) {
		newTestEnv(t)
		cfg, err := loadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, types.DefaultConfig(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeConfig(t, "data_dir: /srv/quwatro\nheat_capacity: 5\nheatwave_celsius: 40\n")
		cfg, err := loadConfig(env.configDir)
		require.NoError(t, err)
		assert.Equal(t, "/srv/quwatro", cfg.DataDir)
		assert.Equal(t, 5, cfg.HeatCapacity)
		assert.Equal(t, 40.0, cfg.HeatwaveCelsius)
		assert.Equal(t, types.DefaultClimateThresholds().FloodRainfallMM, cfg.FloodRainfallMM)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeConfig(t, "water_threshold_liters: 600\n")
		t.Setenv("QUWATRO_WATER_THRESHOLD_LITERS", "750")
		t.Setenv("QUWATRO_LOG_LEVEL", "debug")
		cfg, err := loadConfig(env.configDir)
		require.NoError(t, err)
		assert.Equal(t, 750.0, cfg.WaterThresholdLiters)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("data dir env is not a config override", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeConfig(t, "data_dir: /from/config\n")
		t.Setenv(paths.EnvDataDir, "/from/env")
		cfg, err := loadConfig(env.configDir)
		require.NoError(t, err)
		assert.Equal(t, "/from/config", cfg.DataDir)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeConfig(t, "climate_capacity: 0\n")
		_, err := loadConfig(env.configDir)
		assert.ErrorIs(t, err, types.ErrCapacityInvalid)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeConfig(t, "heat_capacity: [\n")
		_, err := loadConfig(env.configDir)
		assert.Error(t, err)
	})
}

func TestInvalidConfigFailsCommand(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "log_level: loud\n")
	_, err := env.run(t, "", "summary")
	assert.ErrorIs(t, err, types.ErrLogLevelUnknown)
}

func TestSummary(t *testing.T) {
	t.Run("no log yet", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.run(t, "", "summary")
		require.NoError(t, err)
		assert.Equal(t, waver.NoDataMessage+"\n", out)
	})

	t.Run("text", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeUsage(t,
			"2025-01-01,100,100,100,100,100",
			"broken line",
			"2025-01-02,300,100,100,50,50",
		)
		out, err := env.run(t, "", "summary")
		require.NoError(t, err)
		assert.Contains(t, out, "Total recorded days: 2\n")
		assert.Contains(t, out, "Grand total usage: 1100.00 liters\n")
		assert.Contains(t, out, "Average daily usage: 550.00 liters\n")
		assert.Contains(t, out, "Days with high water usage (>500 liters):\n- 2025-01-02: 600.00 liters\n")
		assert.NotContains(t, out, "2025-01-01:")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeUsage(t, "2025-01-02,300,100,100,50,50")
		out, err := env.run(t, "", "summary", "--json")
		require.NoError(t, err)

		var got summaryReport
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 1, got.Days)
		assert.Equal(t, 600.0, got.GrandTotal)
		require.NotNil(t, got.Average)
		assert.Equal(t, 600.0, *got.Average)
		assert.Equal(t, []usageDay{{Date: "2025-01-02", Liters: 600}}, got.HighUsageDays)
	})

	t.Run("json without data", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.run(t, "", "--json", "summary")
		require.NoError(t, err)
		var got summaryReport
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Zero(t, got.Days)
		assert.Nil(t, got.Average)
		assert.Empty(t, got.HighUsageDays)
	})
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	env.writeUsage(t, "2025-01-02,300,100,100,50,50")
	target := filepath.Join(t.TempDir(), "snapshot.db")

	out, err := env.run(t, "", "export", "--out", target)
	require.NoError(t, err)
	assert.FileExists(t, target)
	assert.Contains(t, out, fmt.Sprintf("Locations: %d\n", len(quakeguard.SeedLocations())))
	assert.Contains(t, out, "Water usage days: 1\n")
	assert.Contains(t, out, "Heat readings: 0\n")
}

func TestExportFailureIsWriteError(t *testing.T) {
	env := newTestEnv(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := env.run(t, "", "export", "--out", filepath.Join(blocker, "snapshot.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrWrite)
	assert.Equal(t, exitSysError, exitCode(err))
}

func TestExportDefaultsToDataDir(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "", "export", "--json")
	require.NoError(t, err)

	var got struct {
		Path      string `json:"path"`
		Locations int    `json:"locations"`
		Usage     int    `json:"water_usage"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, filepath.Join(env.dataDir, defaultExportName), got.Path)
	assert.Equal(t, len(quakeguard.SeedLocations()), got.Locations)
	assert.Zero(t, got.Usage)
}

func TestSuiteNavigation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "exit from start menu",
			input: "3\n",
			want:  []string{developedBy, "1. Start\n2. Help\n3. Exit\n", goodbye},
		},
		{
			name:  "help",
			input: "2\n3\n",
			want:  []string{"==== HELP ====", "1. QuakeGuard - Earthquake Risk Info", goodbye},
		},
		{
			name:  "authors and about",
			input: "1\n2\n3\n4\n3\n",
			want: []string{
				"===== QuWaTrO Management Suite =====",
				"--- Authors ---", "4. UNTIVEROS, Edz Margaret",
				"==== About the Project ====",
				"Returning to Start Menu...",
				goodbye,
			},
		},
		{
			name:  "module list and back",
			input: "1\n1\n5\n4\n3\n",
			want: []string{
				"--- Modules ---",
				"1. QuakeGuard (Earthquake Risk System)",
				"5. Back to Main Menu",
				"Select a module: ",
				"Returning to Main Menu...",
			},
		},
		{
			name:  "invalid choices repeat the menu",
			input: "9\nabc\n3\n",
			want:  []string{"Invalid choice!\n", goodbye},
		},
		{
			name:  "end of input inside a module unwinds cleanly",
			input: "1\n1\n1\n",
			want:  []string{"Search Location Info"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			out, err := env.run(t, tt.input)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestInvalidChoiceCount(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "0\n4\nx\n3\n")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Invalid choice!"))
}

func TestSessionKeepsModuleStateAcrossMenus(t *testing.T) {
	env := newTestEnv(t)
	// Suite: Start, Modules, TempTerra, calculate 30/70 and search 35.04,
	// back, reopen TempTerra, delete the stored entry, back out to exit.
	input := strings.Join([]string{
		"1", "1", "3",
		"1", "30", "70", "35.04",
		"5",
		"3", "3", "0", "5",
		"5", "4", "3",
	}, "\n") + "\n"

	out, err := env.run(t, input)
	require.NoError(t, err)
	assert.Contains(t, out, "Calculated Heat Index: 35.04°C")
	assert.Contains(t, out, "Found at index 0: 35.04°C")
	assert.Contains(t, out, "Delete Heat Index at index (0 to 0): ")
	assert.Contains(t, out, "Deleted index 0 from array.")

	lines, err := ledger.NewJournal(filepath.Join(env.dataDir, "tempterra_log.txt")).Lines()
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestModuleCommand(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "4\n5\n", "waver")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Water-Saving Tips ===")
	assert.Contains(t, out, "Returning to Main Menu...")
	assert.NotContains(t, out, developedBy)
}

func TestWaVerDefaultDateFromClock(t *testing.T) {
	env := newTestEnv(t)
	input := "1\n\n10\n20\n30\n40\n50\ny\n5\n"
	_, err := env.run(t, input, "waver")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.dataDir, waver.LogFileName))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14,10,20,30,40,50\n", string(data))
}

func TestMetricsTextfileWrittenOnExit(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "metrics_textfile: metrics.prom\n")

	input := "1\n25\n60\n1\n5\n"
	_, err := env.run(t, input, "tempterra")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.dataDir, "metrics.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `quwatro_records_inserted_total{module="tempterra"} 1`)
}

func TestLogFileWritten(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "--verbose", "summary")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.dataDir, "quwatro.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "session opened")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitSuccess},
		{"usage error", errors.New("unknown flag"), exitUserError},
		{"write failure", fmt.Errorf("log usage: %w", types.ErrWrite), exitSysError},
		{"read failure", fmt.Errorf("replay: %w", types.ErrRead), exitSysError},
		{"export failure", fmt.Errorf("export: %w: %w", types.ErrWrite, errors.New("disk full")), exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
