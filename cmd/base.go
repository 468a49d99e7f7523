// Package cmd holds the configuration plumbing shared by the executables of the module.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-cfxaddress/config"
	"github.com/spacemeshos/go-cfxaddress/config/presets"
	"github.com/spacemeshos/go-cfxaddress/log"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// Configure loads the preset and the config file into conf and applies the flags
// set on the command line over them.
func Configure(c *cobra.Command, conf *config.Config) error {
	changed := map[string]string{}
	c.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	if err := LoadConfig(conf, conf.Preset, conf.ConfigFile); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	// apply CLI args to config
	for name, value := range changed {
		if err := c.Flags().Set(name, value); err != nil {
			return fmt.Errorf("parsing flag %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig loads config and preset (if provided) into the provided config.
// It first loads the preset and then overrides it with values from the config file.
func LoadConfig(cfg *config.Config, preset, path string) error {
	v := viper.New()
	// read in config from file
	if err := config.LoadConfig(path, v); err != nil {
		return err
	}

	// override default config with preset if provided
	if len(preset) == 0 && v.IsSet("main.preset") {
		preset = v.GetString("main.preset")
	}
	if len(preset) > 0 {
		p, err := presets.Get(preset)
		if err != nil {
			return err
		}
		p.ConfigFile = path
		*cfg = p
	}
	return config.Unmarshal(v, cfg)
}

// NewLogger creates a named logger with the level and the encoder of the config.
func NewLogger(conf *config.Config, name, level string) (*zap.Logger, error) {
	logger, err := log.New(name, level, conf.LOGGING.Encoder)
	if err != nil {
		return nil, fmt.Errorf("logger %s: %w", name, err)
	}
	return logger, nil
}
