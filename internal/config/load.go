package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MOVIES_SERVER_PORT.
const EnvPrefix = "MOVIES"

// defaults lists every key with its default value. Keys without a sensible
// default map to nil and are only bound to the environment.
var defaults = map[string]any{
	"server.port":                        3000,
	"server.log_level":                   "info",
	"server.shutdown_timeout_seconds":    10,
	"server.trust_proxy":                 false,
	"database.driver":                    DriverPostgres,
	"database.url":                       nil,
	"database.max_open_conns":            10,
	"database.max_idle_conns":            5,
	"database.conn_max_lifetime_minutes": 5,
	"database.migrate_on_start":          true,
	"rate_limit.enabled":                 false,
	"rate_limit.requests_per_second":     20,
	"rate_limit.burst":                   40,
	"metrics.enabled":                    true,
}

// Load reads configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
//
// When configFile is empty, config.yaml in the working directory is read if
// it exists. Returns a populated Config struct or an error if
// loading/validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, value := range defaults {
		if value != nil {
			v.SetDefault(key, value)
		}
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
