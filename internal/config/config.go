// Package config loads the receiver/sender/logger settings cmd/* binaries
// run with, the same viper-plus-mapstructure, file-plus-env-override
// pattern the rest of the ambient stack uses.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for an infrared binary.
type Config struct {
	Receiver ReceiverConfig `mapstructure:"receiver"`
	Sender   SenderConfig   `mapstructure:"sender"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// ReceiverConfig selects the decoding side: which protocol (or comma
// separated set, for a multi-receiver), which pin to read, at what sample
// rate, and in which sampling mode.
type ReceiverConfig struct {
	Protocols    []string `mapstructure:"protocols"`
	Pin          int      `mapstructure:"pin"`
	Backend      string   `mapstructure:"backend"` // "rpio", "gpiocdev", "periph"
	SampleRateHz int      `mapstructure:"sample_rate_hz"`
	Mode         string   `mapstructure:"mode"` // "periodic" or "event"
}

// SenderConfig selects the encoding side: the carrier-gate pin and the
// carrier frequency it is expected to run at.
type SenderConfig struct {
	Pin        int    `mapstructure:"pin"`
	Backend    string `mapstructure:"backend"`
	CarrierHz  int    `mapstructure:"carrier_hz"`
	TickRateHz int    `mapstructure:"tick_rate_hz"`
}

// LoggerConfig contains logging settings.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("infrared")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		v.AddConfigPath(getConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("INFRARED")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("receiver.protocols", []string{"nec"})
	v.SetDefault("receiver.pin", 17)
	v.SetDefault("receiver.backend", "gpiocdev")
	v.SetDefault("receiver.sample_rate_hz", 40000)
	v.SetDefault("receiver.mode", "periodic")

	v.SetDefault("sender.pin", 18)
	v.SetDefault("sender.backend", "gpiocdev")
	v.SetDefault("sender.carrier_hz", 38000)
	v.SetDefault("sender.tick_rate_hz", 40000)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.file", "")
}

func getConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".infrared")
}
