package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spacemeshos/go-cfxaddress/config"
	"github.com/spacemeshos/go-cfxaddress/config/presets"
)

// AddFlags adds the configuration flags to the flag set, bound to conf.
func AddFlags(flagSet *pflag.FlagSet, conf *config.Config) {
	flagSet.StringVarP(&conf.Preset, "preset", "p", conf.Preset,
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))

	/** ======================== BaseConfig Flags ========================== **/
	flagSet.StringVarP(&conf.BaseConfig.ConfigFile,
		"config", "c", conf.BaseConfig.ConfigFile, "Set Load configuration from file")
	flagSet.BoolVar(&conf.Verbose, "verbose",
		conf.Verbose, "render addresses in the verbose form")
	flagSet.BoolVar(&conf.DumpMetrics, "metrics",
		conf.DumpMetrics, "write collected metrics to stderr before exiting")

	/** ======================== Address Flags ========================== **/
	flagSet.Uint32Var(&conf.Address.DefaultNetwork, "default-network",
		conf.Address.DefaultNetwork, "network used when none is specified")

	/** ======================== Cache Flags ========================== **/
	flagSet.IntVar(&conf.Cache.Size, "cache-size",
		conf.Cache.Size, "number of decoded addresses kept in memory")

	/** ======================== Logging Flags ========================== **/
	flagSet.StringVar(&conf.LOGGING.Encoder, "log-encoder",
		conf.LOGGING.Encoder, "log encoder, console or json")
	flagSet.StringVar(&conf.LOGGING.AppLoggerLevel, "log-level",
		conf.LOGGING.AppLoggerLevel, "log level of the application")
	flagSet.StringVar(&conf.LOGGING.CodecLoggerLevel, "codec-log-level",
		conf.LOGGING.CodecLoggerLevel, "log level of the address codec")
	flagSet.StringVar(&conf.LOGGING.CacheLoggerLevel, "cache-log-level",
		conf.LOGGING.CacheLoggerLevel, "log level of the decode cache")
}
