// Package logging initializes the application's structured and
// human-readable loggers and hands out per-service child loggers.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var structuredLogger *slog.Logger
var humanReadableLogger *slog.Logger

var structuredLevel = new(slog.LevelVar)
var humanReadableLevel = new(slog.LevelVar)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

// Add trace and fatal level names.
var levelNames = map[slog.Leveler]string{
	LevelTrace: "TRACE",
	LevelFatal: "FATAL",
}

func replaceLevelNames(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level := a.Value.Any().(slog.Level)
		levelLabel, exists := levelNames[level]
		if !exists {
			levelLabel = level.String()
		}
		a.Value = slog.StringValue(levelLabel)
	}
	return a
}

// Init initializes the logging system with structured and human-readable loggers.
// It configures JSON output for structured logs and Text output for human-readable logs.
func Init() {
	structuredLevel.Set(slog.LevelDebug)
	humanReadableLevel.Set(slog.LevelInfo)

	// Structured logger (JSON to stdout)
	structuredHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       structuredLevel,
		ReplaceAttr: replaceLevelNames,
	})
	structuredLogger = slog.New(structuredHandler)

	// Human-readable logger (Text to stderr)
	humanReadableHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       humanReadableLevel,
		ReplaceAttr: replaceLevelNames,
	})
	humanReadableLogger = slog.New(humanReadableHandler)

	slog.SetDefault(structuredLogger)
}

// SetLevel sets the minimum logging level for both loggers.
func SetLevel(level slog.Level) {
	structuredLevel.Set(level)
	humanReadableLevel.Set(level)
}

// SetOutput redirects logger output, e.g., to a file. Levels are preserved.
func SetOutput(structuredOutput, humanReadableOutput io.Writer) {
	structuredLogger = slog.New(slog.NewJSONHandler(structuredOutput, &slog.HandlerOptions{
		Level:       structuredLevel,
		ReplaceAttr: replaceLevelNames,
	}))
	humanReadableLogger = slog.New(slog.NewTextHandler(humanReadableOutput, &slog.HandlerOptions{
		Level:       humanReadableLevel,
		ReplaceAttr: replaceLevelNames,
	}))
	slog.SetDefault(structuredLogger)
}

// Structured returns the globally configured structured (JSON) logger.
// Returns nil if Init() has not been called.
func Structured() *slog.Logger {
	return structuredLogger
}

// HumanReadable returns the globally configured human-readable (Text) logger.
// Returns nil if Init() has not been called.
func HumanReadable() *slog.Logger {
	return humanReadableLogger
}

// ForService creates a new logger instance with the 'service' attribute added.
// It uses the global structured logger as the base. Falls back to the default
// logger when Init() has not been called, so library packages can always log.
func ForService(serviceName string) *slog.Logger {
	if structuredLogger == nil {
		return slog.Default().With("service", serviceName)
	}
	return structuredLogger.With("service", serviceName)
}

// SetAppName tags both loggers with an application name attribute. Must be
// called after any SetOutput, which rebuilds the loggers without attributes.
func SetAppName(name string) {
	if name == "" {
		return
	}
	if structuredLogger != nil {
		structuredLogger = structuredLogger.With("app", name)
		slog.SetDefault(structuredLogger)
	}
	if humanReadableLogger != nil {
		humanReadableLogger = humanReadableLogger.With("app", name)
	}
}

// newRotatingWriter creates a size-rotated file writer, creating the log
// directory as needed.
func newRotatingWriter(path string, maxSizeMB int) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}, nil
}

// EnableFileOutput redirects the structured logger to a size-rotated file
// at path. The human-readable logger keeps writing to stderr. Levels are
// preserved.
func EnableFileOutput(path string, maxSizeMB int) error {
	writer, err := newRotatingWriter(path, maxSizeMB)
	if err != nil {
		return err
	}
	SetOutput(writer, os.Stderr)
	return nil
}

// NewFileLogger creates a JSON logger that writes to the given path with
// size-based rotation. The caller owns the returned logger; closing is
// handled by lumberjack on process exit.
func NewFileLogger(path string, maxSizeMB int, level slog.Leveler) (*slog.Logger, error) {
	writer, err := newRotatingWriter(path, maxSizeMB)
	if err != nil {
		return nil, err
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelNames,
	})
	return slog.New(handler), nil
}

// --- Convenience functions using the default logger ---

// Debug logs a debug message using the default slog logger.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs an info message using the default slog logger.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs a warning message using the default slog logger.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs an error message using the default slog logger.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
