package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiotools/aes5-go/internal/conf"
	"github.com/audiotools/aes5-go/internal/logging"
)

func TestApplyLogSettingsEnablesFileOutput(t *testing.T) {
	logging.Init()
	t.Cleanup(func() { logging.SetOutput(os.Stdout, os.Stderr) })

	path := filepath.Join(t.TempDir(), "logs", "aes5.log")
	settings := &conf.Settings{
		Main: conf.MainSettings{
			Name: "aes5-go",
			Log: conf.LogSettings{
				Enabled:   true,
				Path:      path,
				MaxSizeMB: 5,
				Level:     "info",
			},
		},
	}

	require.NoError(t, applyLogSettings(settings))
	logging.Structured().Info("file sink active")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file sink active")
	assert.Contains(t, string(data), `"app":"aes5-go"`)
}

func TestApplyLogSettingsFileLoggingDisabled(t *testing.T) {
	logging.Init()
	t.Cleanup(func() { logging.SetOutput(os.Stdout, os.Stderr) })

	path := filepath.Join(t.TempDir(), "logs", "aes5.log")
	settings := &conf.Settings{
		Main: conf.MainSettings{
			Log: conf.LogSettings{Enabled: false, Path: path, Level: "info"},
		},
	}

	require.NoError(t, applyLogSettings(settings))
	logging.Structured().Info("stdout only")

	assert.NoFileExists(t, path)
}
