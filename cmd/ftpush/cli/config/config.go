// Package config provides configuration management for the ftpush CLI.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the ftpush CLI configuration.
// Use mapstructure tags for Viper unmarshaling.
type Config struct {
	Server      string        `mapstructure:"server"`
	User        string        `mapstructure:"user"`
	Password    string        `mapstructure:"password"`
	Timeout     time.Duration `mapstructure:"timeout"`
	ExplicitTLS bool          `mapstructure:"explicit-tls"`
	DisableEPSV bool          `mapstructure:"disable-epsv"`
	ASCII       bool          `mapstructure:"ascii"`
	Proxy       string        `mapstructure:"proxy"`
	Progress    string        `mapstructure:"progress"`
}

// Load wires the config file and FTPUSH_* environment variables into Viper.
// A missing config file is not an error; a malformed one is.
func Load() error {
	if dir, err := Dir(); err == nil {
		viper.AddConfigPath(dir)
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("FTPUSH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// FromViper returns the resolved configuration.
func FromViper() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
