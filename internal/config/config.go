package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"os"
)

type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	DB     DBConfig     `mapstructure:"db"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Auth   AuthConfig   `mapstructure:"auth"`
	AI     AIConfig     `mapstructure:"ai"`
	Policy PolicyConfig `mapstructure:"policy"`
}

const defaultConfigFile = "./configs/config.yaml"

type section interface {
	setDefaults(v *viper.Viper)
	bindEnvironmentVariables(v *viper.Viper) error
	validate() error
}

// Get loads the configuration or stops the process. An empty file falls back to
// CONFIG_PATH and then to ./configs/config.yaml.
func Get(file string) *Config {
	config, err := Load(file)
	if err != nil {
		log.Fatal(err)
	}
	return config
}

func Load(file string) (*Config, error) {

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if file == "" {
		file = defaultConfigFile
		if value, ok := os.LookupEnv("CONFIG_PATH"); ok && value != "" {
			file = value
		}
	}

	v := viper.New()
	v.SetConfigFile(file)
	v.AutomaticEnv()

	config := Config{}
	sections := config.sections()

	for _, s := range sections {
		s.setDefaults(v)
	}

	if err := bindEnvironmentVariables(v, sections); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", file, err)
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (config *Config) sections() map[string]section {
	return map[string]section{
		"LoggerConfig": &config.Logger,
		"DBConfig":     &config.DB,
		"HTTPConfig":   &config.HTTP,
		"AuthConfig":   &config.Auth,
		"AIConfig":     &config.AI,
		"PolicyConfig": &config.Policy,
	}
}

func bindEnvironmentVariables(v *viper.Viper, sections map[string]section) error {
	var errs []error

	for name, s := range sections {
		if err := s.bindEnvironmentVariables(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config *Config) validate() error {
	var errs []error

	for name, s := range config.sections() {
		if err := s.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func bindAll(v *viper.Viper, bindings map[string]string) error {
	var errs []error
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
