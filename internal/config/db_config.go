package config

import (
	"fmt"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver           string `mapstructure:"driver"`
	ConnectionString string `mapstructure:"connection_string"`
}

func (config *DBConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", DriverSQLite)
}

func (config *DBConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: db connection string")
	}
	if config.Driver != DriverSQLite && config.Driver != DriverPostgres {
		return fmt.Errorf("unsupported db driver: %q", config.Driver)
	}
	return nil
}

func (config *DBConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"db.connection_string": "DB_CONNECTION_STRING",
		"db.driver":            "DB_DRIVER",
	})
}
