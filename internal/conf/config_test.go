package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// resetViper clears the global viper state so tests do not observe each
// other's configuration files or defaults.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

// chdir switches the working directory for the duration of the test,
// restoring the original directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	chdir(t, t.TempDir()) // no config.yaml present

	settings, err := Load()
	require.NoError(t, err)

	assert.False(t, settings.Debug)
	assert.Equal(t, "aes5-go", settings.Main.Name)
	assert.False(t, settings.Main.Log.Enabled)
	assert.Equal(t, "info", settings.Main.Log.Level)
	assert.Equal(t, uint32(1000), settings.Validation.TolerancePPM)
	assert.Equal(t, uint32(2000), settings.Validation.PullTolerancePPM)
	assert.False(t, settings.Validation.Strict)
	assert.Equal(t, uint64(1_000_000), settings.Realtime.MaxLatencyNs)
	assert.Equal(t, 32, settings.Pool.Slots)
	assert.Equal(t, 8192, settings.Pool.BufferBytes)

	assert.Same(t, settings, Get())
}

func TestLoadConfigFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	chdir(t, dir)

	fixture := map[string]any{
		"debug": true,
		"main": map[string]any{
			"name": "studio-clock",
			"log": map[string]any{
				"enabled":   true,
				"path":      "studio.log",
				"maxsizemb": 25,
				"level":     "debug",
			},
		},
		"validation": map[string]any{
			"toleranceppm":     500,
			"pulltoleranceppm": 0,
			"strict":           true,
		},
		"pool": map[string]any{
			"slots":       4,
			"bufferbytes": 2048,
		},
	}
	data, err := yaml.Marshal(fixture)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644))

	settings, err := Load()
	require.NoError(t, err)

	assert.True(t, settings.Debug)
	assert.Equal(t, "studio-clock", settings.Main.Name)
	assert.True(t, settings.Main.Log.Enabled)
	assert.Equal(t, "studio.log", settings.Main.Log.Path)
	assert.Equal(t, 25, settings.Main.Log.MaxSizeMB)
	assert.Equal(t, "debug", settings.Main.Log.Level)
	assert.Equal(t, uint32(500), settings.Validation.TolerancePPM)
	assert.Zero(t, settings.Validation.PullTolerancePPM)
	assert.True(t, settings.Validation.Strict)
	assert.Equal(t, 4, settings.Pool.Slots)
	assert.Equal(t, 2048, settings.Pool.BufferBytes)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, uint64(1_000_000), settings.Realtime.MaxLatencyNs)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	resetViper(t)
	chdir(t, t.TempDir())
	t.Setenv("AES5_VALIDATION_TOLERANCEPPM", "750")
	t.Setenv("AES5_POOL_SLOTS", "16")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint32(750), settings.Validation.TolerancePPM)
	assert.Equal(t, 16, settings.Pool.Slots)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	resetViper(t)
	chdir(t, t.TempDir())
	t.Setenv("AES5_POOL_SLOTS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateSettings(t *testing.T) {
	valid := func() *Settings {
		return &Settings{
			Main:       MainSettings{Log: LogSettings{Level: "info"}},
			Validation: ValidationSettings{TolerancePPM: 1000},
			Realtime:   RealtimeSettings{MaxLatencyNs: 1_000_000},
			Pool:       PoolSettings{Slots: 32, BufferBytes: 8192},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"Defaults", func(*Settings) {}, false},
		{"EmptyLogLevel", func(s *Settings) { s.Main.Log.Level = "" }, false},
		{"TraceLogLevel", func(s *Settings) { s.Main.Log.Level = "trace" }, false},
		{"ZeroSlots", func(s *Settings) { s.Pool.Slots = 0 }, true},
		{"NegativeSlots", func(s *Settings) { s.Pool.Slots = -1 }, true},
		{"ZeroBufferBytes", func(s *Settings) { s.Pool.BufferBytes = 0 }, true},
		{"ZeroMaxLatency", func(s *Settings) { s.Realtime.MaxLatencyNs = 0 }, true},
		{"UnknownLogLevel", func(s *Settings) { s.Main.Log.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := ValidateSettings(s)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
