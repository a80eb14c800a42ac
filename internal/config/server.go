package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig is the environment configuration of `rehcalc serve`. Every key
// is read from REHCALC_<KEY> in the environment or, failing that, from the same
// name in a local .env file.
type ServerConfig struct {
	Addr      string `mapstructure:"ADDR"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	Env       string `mapstructure:"ENV"`
}

// LoadServer reads the server configuration from the environment.
func LoadServer() (*ServerConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENV", "development")

	v.BindEnv("ADDR")
	v.BindEnv("LOG_FORMAT")
	v.BindEnv("ENV")

	// .env values sit between the environment and the built-in defaults
	applyDotEnv(v, ".env", "ADDR", "LOG_FORMAT", "ENV")

	cfg := &ServerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

const envPrefix = "REHCALC"

// applyDotEnv reads path, if present, and uses each REHCALC_<KEY> entry as the
// default for KEY.
func applyDotEnv(v *viper.Viper, path string, keys ...string) {
	f := viper.New()
	f.SetConfigFile(path)
	f.SetConfigType("env")
	if err := f.ReadInConfig(); err != nil {
		return
	}
	for _, k := range keys {
		name := envPrefix + "_" + k
		if f.IsSet(name) {
			v.SetDefault(k, f.GetString(name))
		}
	}
}

// Validate checks the enumerated settings.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("REHCALC_ADDR must not be empty")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("REHCALC_LOG_FORMAT must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	return nil
}

func (c *ServerConfig) IsDev() bool {
	return c.Env == "development"
}
