// Package conf loads and validates application settings from the
// configuration file, environment variables and defaults.
package conf

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// MainSettings holds application-wide settings
type MainSettings struct {
	Name string      // name reported in logs
	Log  LogSettings // log output configuration
}

// LogSettings configures optional file logging
type LogSettings struct {
	Enabled   bool   // true to write a rotated log file
	Path      string // log file path
	MaxSizeMB int    // rotation threshold in megabytes
	Level     string // minimum level: trace, debug, info, warn, error
}

// ValidationSettings holds frequency validation parameters
type ValidationSettings struct {
	TolerancePPM     uint32 // default deviation budget in parts per million
	PullTolerancePPM uint32 // budget applied to pull-up/pull-down variants, 0 to disable
	Strict           bool   // require exact membership in the standard frequency set
}

// RealtimeSettings holds advisory real-time constraint parameters
type RealtimeSettings struct {
	MaxLatencyNs uint64 // latency budget for MeetsRealtimeConstraints
}

// PoolSettings holds static buffer pool sizing
type PoolSettings struct {
	Slots       int // number of fixed slots
	BufferBytes int // backing store size per slot
}

// Settings is the root configuration structure
type Settings struct {
	Debug      bool
	Main       MainSettings
	Validation ValidationSettings
	Realtime   RealtimeSettings
	Pool       PoolSettings
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into Settings.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// Get returns the loaded settings instance, or nil before Load succeeds.
func Get() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/aes5")
	viper.AddConfigPath("/etc/aes5")

	viper.SetEnvPrefix("AES5")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Defaults plus environment are a complete configuration
			return nil
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// ValidateSettings checks settings for values that cannot be used as given.
func ValidateSettings(s *Settings) error {
	if s.Pool.Slots <= 0 {
		return fmt.Errorf("pool.slots must be positive, got %d", s.Pool.Slots)
	}
	if s.Pool.BufferBytes <= 0 {
		return fmt.Errorf("pool.bufferbytes must be positive, got %d", s.Pool.BufferBytes)
	}
	if s.Realtime.MaxLatencyNs == 0 {
		return fmt.Errorf("realtime.maxlatencyns must be positive")
	}
	switch strings.ToLower(s.Main.Log.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", s.Main.Log.Level)
	}
	return nil
}
