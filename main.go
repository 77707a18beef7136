package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/audiotools/aes5-go/cmd"
	"github.com/audiotools/aes5-go/internal/conf"
	"github.com/audiotools/aes5-go/internal/logging"
)

func main() {
	logging.Init()

	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := applyLogSettings(settings); err != nil {
		fmt.Fprintf(os.Stderr, "error applying log settings: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "command error: %v\n", err)
		os.Exit(1)
	}
}

func applyLogSettings(settings *conf.Settings) error {
	switch strings.ToLower(settings.Main.Log.Level) {
	case "trace":
		logging.SetLevel(logging.LevelTrace)
	case "debug":
		logging.SetLevel(slog.LevelDebug)
	case "warn":
		logging.SetLevel(slog.LevelWarn)
	case "error":
		logging.SetLevel(slog.LevelError)
	default:
		logging.SetLevel(slog.LevelInfo)
	}
	if settings.Debug {
		logging.SetLevel(slog.LevelDebug)
	}

	if settings.Main.Log.Enabled {
		if err := logging.EnableFileOutput(settings.Main.Log.Path, settings.Main.Log.MaxSizeMB); err != nil {
			return fmt.Errorf("enabling file logging: %w", err)
		}
	}

	// After EnableFileOutput: SetOutput rebuilds the loggers, dropping
	// attributes applied earlier.
	logging.SetAppName(settings.Main.Name)
	return nil
}
