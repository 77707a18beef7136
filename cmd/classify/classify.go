// Package classify implements the rate category subcommand.
package classify

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/audiotools/aes5-go/internal/aes5"
	"github.com/audiotools/aes5-go/internal/conf"
	"github.com/audiotools/aes5-go/internal/validation"
)

func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <frequency-hz> [frequency-hz...]",
		Short: "Classify frequencies into AES5 rate categories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args)
		},
	}
}

func runClassify(args []string) error {
	manager, err := aes5.NewRateCategoryManager(validation.NewCore())
	if err != nil {
		return fmt.Errorf("failed to create rate category manager: %w", err)
	}

	for _, arg := range args {
		frequency, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid frequency %q: %w", arg, err)
		}

		result := manager.Classify(uint32(frequency))
		if result.Valid {
			minHz, maxHz, _ := aes5.CategoryRange(result.Category)
			fmt.Printf("%8d Hz  %-14s multiplier=%.5f band=[%d, %d] Hz\n",
				result.Frequency, result.Category.Name(), result.Multiplier, minHz, maxHz)
		} else {
			fmt.Printf("%8d Hz  outside all rate categories\n", result.Frequency)
		}
	}

	return nil
}
