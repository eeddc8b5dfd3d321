package config

import (
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type HTTPConfig struct {
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

func (config *HTTPConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("http.address", ":5000")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.max_body_bytes", 10<<20)
}

func (config *HTTPConfig) validate() error {
	if config.Address == "" {
		return fmt.Errorf("missing variable: http address")
	}
	if config.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be greater than zero")
	}
	return nil
}

func (config *HTTPConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"http.address": "HTTP_ADDRESS",
	})
}
