package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fussel132/hue-controller/internal/constants"
	"github.com/spf13/viper"
)

type Config struct {
	BridgeIP  string        `mapstructure:"bridgeIp"`
	HueAppKey string        `mapstructure:"hueApplicationKey"`
	Mode      string        `mapstructure:"mode"`
	Insecure  bool          `mapstructure:"insecure"`
	Timeout   time.Duration `mapstructure:"timeout"`
	LogLevel  string        `mapstructure:"logLevel"`
	LogFile   string        `mapstructure:"logFile"`
}

func setDefaults() {
	viper.SetDefault("bridgeIp", "")
	viper.SetDefault("hueApplicationKey", "")
	viper.SetDefault("mode", constants.DefaultMode)
	viper.SetDefault("insecure", false)
	viper.SetDefault("timeout", constants.DefaultRequestTimeout)
	viper.SetDefault("logLevel", "warn")
	viper.SetDefault("logFile", "")
}

// InitialiseConfig prepares viper to read settings from a config file (optional), the environment and defaults.
// An explicit configFile must exist; otherwise the usual locations are searched and a missing file is fine.
func InitialiseConfig(configFile string) error {
	setDefaults()

	viper.SetEnvPrefix("hueinfo")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("/etc/hue-info/")
		viper.AddConfigPath("$HOME/.config/hue-info/")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

func ReadConfig() (*Config, error) {
	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = constants.DefaultRequestTimeout
	}
	return &cfg, nil
}

// Level maps the configured log level name to a logger level, defaulting to warn.
func (c Config) Level() log.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}
