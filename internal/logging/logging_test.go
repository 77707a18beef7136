package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndSetOutput(t *testing.T) {
	Init()
	require.NotNil(t, Structured())
	require.NotNil(t, HumanReadable())

	var structured, human bytes.Buffer
	SetOutput(&structured, &human)

	Structured().Info("validation started", "frequency", 48000)
	HumanReadable().Info("validation started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry))
	assert.Equal(t, "validation started", entry["msg"])
	assert.Equal(t, float64(48000), entry["frequency"])
	assert.Equal(t, "INFO", entry["level"])

	assert.Contains(t, human.String(), "msg=\"validation started\"")
}

func TestSetLevelFiltersOutput(t *testing.T) {
	Init()
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)

	SetLevel(slog.LevelWarn)
	Structured().Info("suppressed")
	Structured().Warn("emitted")

	out := structured.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "emitted")

	SetLevel(slog.LevelDebug)
}

func TestCustomLevelNames(t *testing.T) {
	Init()
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)
	SetLevel(LevelTrace)

	Structured().Log(context.Background(), LevelTrace, "trace message")
	Structured().Log(context.Background(), LevelFatal, "fatal message")

	lines := strings.Split(strings.TrimSpace(structured.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"TRACE"`)
	assert.Contains(t, lines[1], `"level":"FATAL"`)

	SetLevel(slog.LevelDebug)
}

func TestForService(t *testing.T) {
	Init()
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)

	ForService("aes5").Info("ready")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry))
	assert.Equal(t, "aes5", entry["service"])
}

func TestSetAppName(t *testing.T) {
	Init()
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)

	SetAppName("aes5-go")
	Structured().Info("tagged")
	HumanReadable().Info("tagged")

	assert.Contains(t, structured.String(), `"app":"aes5-go"`)
	assert.Contains(t, human.String(), "app=aes5-go")
}

func TestEnableFileOutput(t *testing.T) {
	Init()
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr) })

	path := filepath.Join(t.TempDir(), "rotated", "aes5.log")
	require.NoError(t, EnableFileOutput(path, 1))

	Structured().Info("rotated entry")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotated entry")
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "aes5.log")

	logger, err := NewFileLogger(path, 1, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("file entry")

	assert.FileExists(t, path)
}
