// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

// Defaults applied when a variable is unset or fails to parse.
const (
	DefaultAppName = "my_app"
	DefaultHost    = "0.0.0.0"
	DefaultPort    = 3000
)

// Config holds the runtime configuration of the service.
type Config struct {
	AppName     string
	Host        string
	Port        int
	DatabaseURL string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppName: DefaultAppName,
		Host:    DefaultHost,
		Port:    DefaultPort,
	}
}

// Load reads APP_NAME, HOST, PORT and DATABASE_URL from the environment.
// Unset or unparsable values fall back silently to the defaults; an empty
// DATABASE_URL selects the in-memory store.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("APP_NAME"); v != "" {
		cfg.AppName = v
	}
	if v := os.Getenv("HOST"); v != "" {
		if ip := net.ParseIP(v); ip != nil {
			cfg.Host = v
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port <= 65535 {
			cfg.Port = port
		}
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	return cfg
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
