// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "aes5-go")
	viper.SetDefault("main.log.enabled", false)
	viper.SetDefault("main.log.path", "aes5.log")
	viper.SetDefault("main.log.maxsizemb", 10)
	viper.SetDefault("main.log.level", "info")

	viper.SetDefault("validation.toleranceppm", 1000)
	viper.SetDefault("validation.pulltoleranceppm", 2000)
	viper.SetDefault("validation.strict", false)

	viper.SetDefault("realtime.maxlatencyns", 1_000_000)

	viper.SetDefault("pool.slots", 32)
	viper.SetDefault("pool.bufferbytes", 8192)
}
