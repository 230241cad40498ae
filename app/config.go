package app

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration
type Config struct {
	ServerPort     string        `env:"PORT" envDefault:"3000"`
	StoreDriver    string        `env:"STORE_DRIVER" envDefault:"file"`
	StorePath      string        `env:"STORE_PATH" envDefault:"frases.json"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"frases.db"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	Timezone       string        `env:"TIMEZONE" envDefault:"America/Santiago"`
	SeedPath       string        `env:"SEED_PATH"`
	AdminJWTSecret string        `env:"ADMIN_JWT_SECRET"`
	AdminJWTTTL    time.Duration `env:"ADMIN_JWT_TTL" envDefault:"24h"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`

	// Location is resolved from Timezone by LoadConfig
	Location *time.Location
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case "file", "memory", "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL must be set when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.AdminJWTTTL <= 0 {
		return nil, fmt.Errorf("ADMIN_JWT_TTL must be positive")
	}

	return cfg, nil
}
