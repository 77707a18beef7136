// Package validate implements the frequency validation subcommand.
package validate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/audiotools/aes5-go/internal/aes5"
	"github.com/audiotools/aes5-go/internal/conf"
	"github.com/audiotools/aes5-go/internal/validation"
)

// tolerancePPM holds the per-invocation tolerance flag value
var tolerancePPM uint32

func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <frequency-hz> [frequency-hz...]",
		Short: "Validate sampling frequencies against AES5",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(settings, args)
		},
	}

	cmd.Flags().Uint32VarP(&tolerancePPM, "tolerance", "t", 0, "tolerance budget in ppm (overrides configuration)")

	return cmd
}

func runValidate(settings *conf.Settings, args []string) error {
	budget := settings.Validation.TolerancePPM
	if tolerancePPM > 0 {
		budget = tolerancePPM
	}

	validator, err := aes5.NewFrequencyValidator(
		aes5.NewComplianceEngine(),
		validation.NewCore(),
		aes5.WithTolerancePPM(budget),
		aes5.WithPullTolerancePPM(settings.Validation.PullTolerancePPM),
		aes5.WithStrictMode(settings.Validation.Strict),
	)
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	exitErr := error(nil)
	for _, arg := range args {
		frequency, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid frequency %q: %w", arg, err)
		}

		result := validator.Validate(uint32(frequency))
		printResult(result)
		if !result.IsValid() && exitErr == nil {
			exitErr = fmt.Errorf("frequency %d Hz failed validation", frequency)
		}
	}

	metrics := validator.Metrics()
	fmt.Printf("\nValidations: %d total, %d ok, %d failed, max latency %d ns\n",
		metrics.TotalValidations, metrics.SuccessfulValidations,
		metrics.FailedValidations, metrics.MaxLatencyNs)

	return exitErr
}

func printResult(result aes5.Result) {
	marker := "OK "
	if !result.IsValid() {
		marker = "FAIL"
	}
	fmt.Printf("%s %8d Hz  status=%s closest=%d Hz clause=%s deviation=%.2f ppm\n",
		marker, result.DetectedFrequency, result.Status,
		result.ClosestStandardFrequency, result.ApplicableClause, result.DeviationPPM)
}
