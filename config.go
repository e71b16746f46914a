package weetools

import (
	"flag"
	"fmt"

	"github.com/dracory/env"
)

// Config holds the settings for the demo server.
type Config struct {
	HTTPPort int    // Port to listen on (default: 8080)
	BasePath string // Base URL path (default: "/")
	Driver   string // Database driver (default: sqlite)
	DSN      string // Database DSN (default: in-memory sqlite)
	Drivers  []string // Allowed drivers; empty means all supported
}

// LoadConfig reads flags/env with sensible defaults.
// Flags take precedence over env.
func LoadConfig() (Config, error) {
	var cfg Config

	// Optionally load from .env files (missing files are ignored inside the lib)
	env.Load(".env")

	cfg.HTTPPort = env.GetIntOrDefault("HTTP_PORT", 8080)
	cfg.BasePath = env.GetStringOrDefault("BASE_URL", "/")
	cfg.Driver = env.GetStringOrDefault("DB_DRIVER", "sqlite")
	cfg.DSN = env.GetStringOrDefault("DB_DSN", "file::memory:?cache=shared")
	cfg.Drivers = splitCSV(env.GetStringOrDefault("DB_DRIVERS", ""))
	for i, d := range cfg.Drivers {
		cfg.Drivers[i] = normalizeDriver(d)
	}

	port := flag.Int("port", cfg.HTTPPort, "HTTP port to listen on")
	base := flag.String("base", cfg.BasePath, "Base path to mount handler under (e.g. /api)")
	driver := flag.String("driver", cfg.Driver, "Database driver (postgres, mysql, sqlite, sqlserver)")
	dsn := flag.String("dsn", cfg.DSN, "Database DSN")
	flag.Parse()

	cfg.HTTPPort = *port
	cfg.BasePath = *base
	cfg.Driver = normalizeDriver(*driver)
	cfg.DSN = *dsn

	if cfg.DSN == "" {
		return cfg, fmt.Errorf("DB_DSN is required")
	}
	return cfg, nil
}
