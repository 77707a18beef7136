// Package cmd assembles the aes5 command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/audiotools/aes5-go/cmd/benchmark"
	"github.com/audiotools/aes5-go/cmd/classify"
	"github.com/audiotools/aes5-go/cmd/validate"
	"github.com/audiotools/aes5-go/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aes5",
		Short: "AES5 sampling frequency compliance toolkit",
		Long: "Validates and classifies digital-audio sampling frequencies against " +
			"the AES5 preferred-sampling-frequency standard, and exercises the " +
			"static audio buffer pool.",
	}

	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		validate.Command(settings),
		classify.Command(settings),
		benchmark.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Sync the settings struct with viper so command-line arguments
		// take precedence over the config file.
		return viper.Unmarshal(settings)
	}

	return rootCmd
}

// setupFlags binds persistent flags to viper keys.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().Bool("debug", settings.Debug, "Enable debug output")
	rootCmd.PersistentFlags().Uint32("tolerance", settings.Validation.TolerancePPM, "Default tolerance budget in ppm")
	rootCmd.PersistentFlags().Bool("strict", settings.Validation.Strict, "Require exact standard frequency matches")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("validation.toleranceppm", rootCmd.PersistentFlags().Lookup("tolerance"))
	_ = viper.BindPFlag("validation.strict", rootCmd.PersistentFlags().Lookup("strict"))
}
