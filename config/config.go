// Package config contains the configuration of the address tooling.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-cfxaddress/cache"
	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
)

const defaultConfigFileName = "./config.toml"

// Config defines the top level configuration.
type Config struct {
	BaseConfig `mapstructure:"main"`
	Address    network.Config `mapstructure:"address"`
	Cache      cache.Config   `mapstructure:"cache"`
	LOGGING    LoggerConfig   `mapstructure:"logging"`
}

// BaseConfig defines the options that are not specific to a component.
type BaseConfig struct {
	ConfigFile string `mapstructure:"config"`
	Preset     string `mapstructure:"preset"`

	// Verbose renders addresses in the verbose form.
	Verbose bool `mapstructure:"verbose"`
	// DumpMetrics writes the collected metrics to stderr on exit.
	DumpMetrics bool `mapstructure:"metrics"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		Address:    network.DefaultConfig(),
		Cache:      cache.DefaultConfig(),
		LOGGING:    defaultLoggingConfig(),
	}
}

// DefaultTestConfig returns the default configuration for tests.
func DefaultTestConfig() Config {
	conf := DefaultConfig()
	conf.Address = network.DefaultTestConfig()
	conf.Cache.Size = 16
	return conf
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		ConfigFile: defaultConfigFileName,
	}
}

// SetConfigFile overrides the default config file path.
func (cfg *BaseConfig) SetConfigFile(file string) {
	cfg.ConfigFile = file
}

// NetworkParams builds the network table described by the configuration.
func (cfg *Config) NetworkParams() (*network.Params, error) {
	return network.NewParams(cfg.Address)
}

// LoadConfig reads the config file into vip. A missing default config file is
// not an error, any other file must exist.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		fileLocation = defaultConfigFileName
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		if fileLocation == defaultConfigFileName && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}

// Unmarshal decodes the settings read into vip over cfg. Unknown keys are an error.
func Unmarshal(vip *viper.Viper, cfg *Config) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		WithZeroFields(),
		WithIgnoreUntagged(),
		WithErrorUnused(),
	}
	if err := vip.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

func WithZeroFields() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ZeroFields = true
	}
}

func WithIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}
