package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"time"
)

const minJwtSecretLength = 16

type AuthConfig struct {
	JwtSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

func (config *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
}

func (config *AuthConfig) validate() error {
	var errs []error

	if len(config.JwtSecret) < minJwtSecretLength {
		errs = append(errs, fmt.Errorf("jwt_secret must be at least %d characters", minJwtSecretLength))
	}
	if config.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("token_ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (config *AuthConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"auth.jwt_secret": "JWT_SECRET",
		"auth.token_ttl":  "JWT_EXPIRES_IN",
	})
}
