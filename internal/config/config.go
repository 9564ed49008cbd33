package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

const (
	defaultPort            = "5000"
	defaultDatasetPath     = "sample_volunteer_database.xlsx"
	defaultDatasetSheet    = "Sheet1"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port            string
	DatasetPath     string
	DatasetSheet    string
	Env             string
	ShutdownTimeout time.Duration

	// Warnings collects recoverable problems found while loading. The logger
	// does not exist yet at that point, so the caller reports them.
	Warnings []string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	var warnings []string
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		warnings = append(warnings, fmt.Sprintf(".env ignored: %v", err))
	}

	cfg := Config{
		Port:            getenv("PORT", defaultPort),
		DatasetPath:     getenv("DATASET_PATH", defaultDatasetPath),
		DatasetSheet:    getenv("DATASET_SHEET", defaultDatasetSheet),
		Env:             getenv("APP_ENV", EnvProduction),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if cfg.Env != EnvProduction && cfg.Env != EnvDevelopment {
		warnings = append(warnings, fmt.Sprintf("unknown APP_ENV %q, using %s", cfg.Env, EnvProduction))
		cfg.Env = EnvProduction
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			warnings = append(warnings, fmt.Sprintf("invalid SHUTDOWN_TIMEOUT %q, using %s", v, defaultShutdownTimeout))
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	cfg.Warnings = warnings
	return cfg
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
