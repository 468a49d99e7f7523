package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-cfxaddress/log"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.WarnLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = log.ConsoleEncoder
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = log.JSONEncoder
)

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder          LogEncoder `mapstructure:"log-encoder"`
	AppLoggerLevel   string     `mapstructure:"app"`
	CodecLoggerLevel string     `mapstructure:"codec"`
	CacheLoggerLevel string     `mapstructure:"cache"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:          ConsoleLogEncoder,
		AppLoggerLevel:   defaultLoggingLevel.String(),
		CodecLoggerLevel: defaultLoggingLevel.String(),
		CacheLoggerLevel: defaultLoggingLevel.String(),
	}
}
