package config

import (
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type AIConfig struct {
	APIKey               string        `mapstructure:"api_key"`
	Models               []string      `mapstructure:"models"`
	MaxRequestsPerMinute float32       `mapstructure:"max_requests_per_minute"`
	MaxRequestsPerDay    float32       `mapstructure:"max_requests_per_day"`
	QuotaCooldown        time.Duration `mapstructure:"quota_cooldown"`
}

// Enabled is false when no key is configured; bio generation then always
// answers with the local template.
func (config *AIConfig) Enabled() bool {
	return config.APIKey != ""
}

func (config *AIConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("ai.models", []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-2.0-flash"})
	v.SetDefault("ai.max_requests_per_minute", 15)
	v.SetDefault("ai.max_requests_per_day", 1500)
	v.SetDefault("ai.quota_cooldown", 10*time.Minute)
}

func (config *AIConfig) validate() error {
	if !config.Enabled() {
		return nil
	}
	if len(config.Models) == 0 {
		return fmt.Errorf("at least one model is required when api_key is set")
	}
	if config.MaxRequestsPerMinute <= 0 || config.MaxRequestsPerDay <= 0 {
		return fmt.Errorf("request limits must be greater than zero")
	}
	return nil
}

func (config *AIConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"ai.api_key":                 "GEMINI_API_KEY",
		"ai.max_requests_per_minute": "AI_MAX_REQUESTS_PER_MINUTE",
		"ai.max_requests_per_day":    "AI_MAX_REQUESTS_PER_DAY",
	})
}
