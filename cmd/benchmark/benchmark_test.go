package benchmark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/audiotools/aes5-go/internal/conf"
)

func testSettings() *conf.Settings {
	return &conf.Settings{
		Validation: conf.ValidationSettings{TolerancePPM: 1000, PullTolerancePPM: 2000},
		Realtime:   conf.RealtimeSettings{MaxLatencyNs: 1_000_000},
		Pool:       conf.PoolSettings{Slots: 4, BufferBytes: 4096},
	}
}

func TestBenchmarkCommandRuns(t *testing.T) {
	cmd := Command(testSettings())
	cmd.SetArgs([]string{"--iterations", "25", "--workers", "2"})
	require.NoError(t, cmd.Execute())
}

func TestBenchmarkCommandRejectsBadFlags(t *testing.T) {
	t.Run("ZeroIterations", func(t *testing.T) {
		cmd := Command(testSettings())
		cmd.SetArgs([]string{"--iterations", "0"})
		require.Error(t, cmd.Execute())
	})

	t.Run("ZeroWorkers", func(t *testing.T) {
		cmd := Command(testSettings())
		cmd.SetArgs([]string{"--iterations", "10", "--workers", "0"})
		require.Error(t, cmd.Execute())
	})
}
