// Package config loads application configuration from an optional YAML file
// and FITTRACKER_* environment variables, with sensible on-device defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/app"
)

type Config struct {
	Data DataConfig `mapstructure:"data"`
	Log  LogConfig  `mapstructure:"log"`
}

type DataConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	FormatJSON bool   `mapstructure:"format_json"`
}

// Load reads config.yaml from the app config directory (if present) and
// applies environment overrides, e.g. FITTRACKER_LOG_LEVEL.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if dir, err := app.ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("fittracker")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("data.path", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.format_json", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
