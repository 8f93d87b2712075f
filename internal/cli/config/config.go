// Package config loads the typograph CLI configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the typograph configuration.
type Config struct {
	ProjectName string     `mapstructure:"project_name"`
	Docs        DocsConfig `mapstructure:"docs"`
}

// DocsConfig represents documentation settings.
type DocsConfig struct {
	Output string `mapstructure:"output"`
	Port   int    `mapstructure:"port"`
	Host   string `mapstructure:"host"`
}

// Load loads the configuration from typograph.yml or typograph.yaml in the
// working directory. A missing file yields the defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("project_name", "Typograph")
	v.SetDefault("docs.output", "build/docs")
	v.SetDefault("docs.port", 8080)
	v.SetDefault("docs.host", "localhost")

	v.SetConfigName("typograph")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TYPOGRAPH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
