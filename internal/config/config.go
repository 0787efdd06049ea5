package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Address returns the host:port listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig points at the optional MongoDB workout log store. An empty
// URI selects the in-process store.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

func (d DatabaseConfig) Enabled() bool {
	return d.URI != ""
}

// AuthConfig selects the identity mechanism. With a JWT secret set, caller
// identity comes from a validated Bearer token instead of the X-User-Id
// header.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars with underscores: server.host -> SERVER_HOST
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// The deployment scripts export bare HOST/PORT, keep honoring those too.
	_ = viper.BindEnv("server.host", "SERVER_HOST", "HOST")
	_ = viper.BindEnv("server.port", "SERVER_PORT", "PORT")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8505)
	viper.SetDefault("database.uri", "")
	viper.SetDefault("database.name", "phoenix_workouts")
	viper.SetDefault("auth.jwt_secret", "")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file is optional; env vars and defaults suffice.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
