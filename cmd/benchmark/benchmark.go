// Package benchmark implements the pool and validator benchmark subcommand.
package benchmark

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/audiotools/aes5-go/internal/aes5"
	"github.com/audiotools/aes5-go/internal/conf"
	"github.com/audiotools/aes5-go/internal/framepool"
	"github.com/audiotools/aes5-go/internal/observability"
	"github.com/audiotools/aes5-go/internal/validation"
)

var (
	iterations    int
	workers       int
	telemetryAddr string
)

func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Exercise the buffer pool and validator, print throughput and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations < 1 {
				return fmt.Errorf("iterations must be positive, got %d", iterations)
			}
			if workers < 1 {
				return fmt.Errorf("workers must be positive, got %d", workers)
			}
			return runBenchmark(settings)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 100_000, "allocate/release cycles per worker")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrent workers")
	cmd.Flags().StringVar(&telemetryAddr, "telemetry", "", "serve prometheus metrics on this address while running")

	return cmd
}

func runBenchmark(settings *conf.Settings) error {
	pool, err := framepool.New(settings.Pool.Slots, settings.Pool.BufferBytes)
	if err != nil {
		return fmt.Errorf("failed to create pool: %w", err)
	}

	validator, err := aes5.NewFrequencyValidator(
		aes5.NewComplianceEngine(),
		validation.NewCore(),
		aes5.WithTolerancePPM(settings.Validation.TolerancePPM),
		aes5.WithPullTolerancePPM(settings.Validation.PullTolerancePPM),
		aes5.WithStrictMode(settings.Validation.Strict),
	)
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	manager, err := aes5.NewRateCategoryManager(validation.NewCore())
	if err != nil {
		return fmt.Errorf("failed to create rate category manager: %w", err)
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	var wg sync.WaitGroup
	quit := make(chan struct{})
	if telemetryAddr != "" {
		endpoint := observability.NewEndpoint(telemetryAddr, metrics)
		endpoint.Start(&wg, quit)
	}

	format := framepool.AudioFormat{
		SampleRate:       aes5.PrimaryFrequency,
		ChannelCount:     2,
		SampleSizeBits:   16,
		FrameSizeSamples: 480,
	}

	fmt.Printf("Running %d workers x %d iterations against %d slots...\n",
		workers, iterations, settings.Pool.Slots)

	start := time.Now()
	var benchWG sync.WaitGroup
	for w := 0; w < workers; w++ {
		benchWG.Add(1)
		go func() {
			defer benchWG.Done()
			for i := 0; i < iterations; i++ {
				callStart := time.Now()
				result := validator.Validate(format.SampleRate)
				metrics.AES5.RecordValidationLatency(time.Since(callStart).Seconds())
				metrics.AES5.RecordValidation(result.Status.String(), result.DeviationPPM)

				band := manager.Classify(format.SampleRate)
				metrics.AES5.RecordRateCategory(band.Category.String())

				header := pool.Allocate(format)
				if header == nil {
					metrics.FramePool.RecordAllocation("exhausted")
					continue
				}
				metrics.FramePool.RecordAllocation("ok")

				if pool.Release(header) {
					metrics.FramePool.RecordRelease("ok")
				} else {
					metrics.FramePool.RecordRelease("rejected")
				}
			}
		}()
	}
	benchWG.Wait()
	elapsed := time.Since(start)

	stats := pool.Stats()
	metrics.FramePool.UpdateUsage(stats.InUseSlots, stats.SuccessRate)

	total := workers * iterations
	fmt.Printf("\n%d cycles in %v (%.0f cycles/s)\n", total, elapsed,
		float64(total)/elapsed.Seconds())
	fmt.Printf("Pool: %d/%d slots free, %d attempts, %d allocations, %.4f success rate\n",
		stats.AvailableSlots, stats.TotalSlots, stats.AllocationAttempts,
		stats.Allocations, stats.SuccessRate)

	vm := validator.Metrics()
	fmt.Printf("Validator: %d validations, avg %d ns, max %d ns, realtime=%v\n",
		vm.TotalValidations, vm.AverageLatencyNs(), vm.MaxLatencyNs,
		validator.MeetsRealtimeConstraints(settings.Realtime.MaxLatencyNs))

	close(quit)
	wg.Wait()
	return nil
}
